package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradelog/trade"
)

func TestImportJSONLegacySchema(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	// A legacy export: single pnl column, no type, no stop, qty instead of size.
	data := []byte(`[
		{"id": 1, "date": "2024-01-02", "symbol": "AAPL", "entry": 100, "exit": 110, "qty": 10, "pnl": 100},
		{"id": 2, "date": "2024-01-03", "symbol": "TSLA", "type": "short", "entry": 50, "exit": 55, "size": 2, "stop": 52, "pnl_usd": -10, "pnl_pct": -10}
	]`)

	n, err := ImportJSON(j, "alice", data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	recs, err := j.ListTrades("alice")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	first := recs[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, trade.Unknown, first.Direction)
	assert.InDelta(t, 100.0, first.PnLUSD, 1e-9)
	assert.Zero(t, first.Size) // qty has no fallback into size
	assert.Nil(t, first.Stop)

	second := recs[1]
	assert.Equal(t, trade.Short, second.Direction)
	require.NotNil(t, second.Stop)
	assert.InDelta(t, 52.0, *second.Stop, 1e-9)
	require.NotNil(t, second.PnLPct)
	assert.InDelta(t, -10.0, *second.PnLPct, 1e-9)
}

func TestImportJSONAssignsIDsAndOwner(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	data := []byte(`[{"date": "2024-01-02", "symbol": "AAPL", "pnl": 5}]`)

	n, err := ImportJSON(j, "alice", data)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	recs, err := j.ListTrades("alice")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.NotEmpty(t, recs[0].ID)
	assert.Equal(t, "alice", recs[0].OwnerID)
}

func TestImportJSONMalformedRowDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	data := []byte(`[
		{"id": "good", "date": "2024-01-02", "symbol": "AAPL", "pnl": 5},
		{"id": "ugly", "date": "garbage", "symbol": "TSLA", "entry": "not a number", "pnl": "nope"},
		"not even an object"
	]`)

	n, err := ImportJSON(j, "alice", data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ugly, err := j.GetTrade("ugly")
	require.NoError(t, err)
	assert.Zero(t, ugly.PnLUSD)
	assert.True(t, ugly.Date.IsZero())
}

func TestImportJSONRejectsNonArray(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := ImportJSON(j, "alice", []byte(`{"id": 1}`))
	assert.Error(t, err)

	_, err = ImportJSON(j, "alice", []byte(`{{{`))
	assert.Error(t, err)
}
