package journal

import (
	"database/sql"
	"math"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradelog/trade"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func ptr(v float64) *float64 { return &v }

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('trades','settings')`)
	assert.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["trades"])
	assert.True(t, found["settings"])
}

func TestSQLiteInsertAndGetTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	expected := trade.Record{
		ID:        "T1",
		OwnerID:   "alice",
		Date:      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Symbol:    "AAPL",
		Direction: trade.Long,
		Entry:     100.5,
		Exit:      110.25,
		Size:      10,
		Stop:      ptr(95.0),
		PnLUSD:    97.5,
		PnLPct:    ptr(9.7),
	}

	require.NoError(t, j.InsertTrade(expected))

	actual, err := j.GetTrade("T1")
	require.NoError(t, err)

	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.OwnerID, actual.OwnerID)
	assert.True(t, actual.Date.Equal(expected.Date))
	assert.Equal(t, expected.Symbol, actual.Symbol)
	assert.Equal(t, trade.Long, actual.Direction)
	assert.InDelta(t, expected.Entry, actual.Entry, 1e-9)
	assert.InDelta(t, expected.Exit, actual.Exit, 1e-9)
	assert.InDelta(t, expected.Size, actual.Size, 1e-9)
	require.NotNil(t, actual.Stop)
	assert.InDelta(t, 95.0, *actual.Stop, 1e-9)
	assert.InDelta(t, expected.PnLUSD, actual.PnLUSD, 1e-6)
	require.NotNil(t, actual.PnLPct)
	assert.InDelta(t, 9.7, *actual.PnLPct, 1e-9)
}

func TestSQLiteGetTradeNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetTrade("nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteOptionalFieldsRoundTrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	rec := trade.Record{
		ID:        "T1",
		OwnerID:   "alice",
		Date:      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Symbol:    "AAPL",
		Direction: trade.Short,
		Entry:     math.NaN(), // unparsable legacy price
		Exit:      100,
		Size:      0,
		PnLUSD:    -10,
	}

	require.NoError(t, j.InsertTrade(rec))

	actual, err := j.GetTrade("T1")
	require.NoError(t, err)

	// NaN round-trips through NULL, never as 0.
	assert.True(t, math.IsNaN(actual.Entry))
	assert.InDelta(t, 100.0, actual.Exit, 1e-9)
	assert.Nil(t, actual.Stop)
	assert.Nil(t, actual.PnLPct)
}

func TestSQLiteListTradesOwnerScoped(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, rec := range []trade.Record{
		{ID: "A1", OwnerID: "alice", Date: base.AddDate(0, 0, 1), Symbol: "AAPL", Direction: trade.Long, PnLUSD: 10},
		{ID: "B1", OwnerID: "bob", Date: base, Symbol: "TSLA", Direction: trade.Short, PnLUSD: -5},
		{ID: "A2", OwnerID: "alice", Date: base, Symbol: "MSFT", Direction: trade.Long, PnLUSD: 3},
	} {
		require.NoError(t, j.InsertTrade(rec))
	}

	recs, err := j.ListTrades("alice")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Oldest first.
	assert.Equal(t, "A2", recs[0].ID)
	assert.Equal(t, "A1", recs[1].ID)
}

func TestSQLiteListTradesDateTiesKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"Z", "M", "A"} {
		require.NoError(t, j.InsertTrade(trade.Record{
			ID: id, OwnerID: "alice", Date: d, Symbol: "AAPL", Direction: trade.Long,
		}))
	}

	recs, err := j.ListTrades("alice")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Z", recs[0].ID)
	assert.Equal(t, "M", recs[1].ID)
	assert.Equal(t, "A", recs[2].ID)
}

func TestSQLiteListTradesBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"T1", "T2", "T3"} {
		require.NoError(t, j.InsertTrade(trade.Record{
			ID: id, OwnerID: "alice", Date: base.AddDate(0, 0, i*7), Symbol: "AAPL", Direction: trade.Long,
		}))
	}

	// [start, end): the start is inclusive, the end is not.
	recs, err := j.ListTradesBetween("alice", base.AddDate(0, 0, 7), base.AddDate(0, 0, 14))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "T2", recs[0].ID)
}

func TestSQLiteListTradesEmpty(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	recs, err := j.ListTrades("alice")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSQLiteStartingCapitalDefault(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	v, err := j.StartingCapital()
	require.NoError(t, err)
	assert.InDelta(t, float64(DefaultStartingCapital), v, 1e-9)
}

func TestSQLiteStartingCapitalPersists(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	require.NoError(t, j.SetStartingCapital(25000.50))
	require.NoError(t, j.SetStartingCapital(30000)) // overwrite
	require.NoError(t, j.Close())

	// Survives a reopen.
	j2, err := NewSQLite(path)
	require.NoError(t, err)
	defer j2.Close()

	v, err := j2.StartingCapital()
	require.NoError(t, err)
	assert.InDelta(t, 30000.0, v, 1e-9)
}
