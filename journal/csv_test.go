package journal

import (
	"bytes"
	"encoding/csv"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradelog/trade"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	records := []trade.Record{
		{
			ID:        "T1",
			OwnerID:   "alice",
			Date:      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Symbol:    "AAPL",
			Direction: trade.Long,
			Entry:     100,
			Exit:      110,
			Size:      10,
			Stop:      ptr(95.0),
			PnLUSD:    100,
			PnLPct:    ptr(10.0),
		},
		{
			ID:        "T2",
			OwnerID:   "alice",
			Date:      time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			Symbol:    "TSLA",
			Direction: trade.Unknown,
			Entry:     math.NaN(),
			Exit:      50,
			Size:      0,
			PnLUSD:    -5,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"T1", "alice", "2024-01-02", "AAPL", "long", "100", "110", "10", "95", "100", "10"}, rows[1])

	// Unknown values export as empty cells, not zeros.
	assert.Equal(t, "", rows[2][5])  // entry
	assert.Equal(t, "", rows[2][8])  // stop
	assert.Equal(t, "", rows[2][10]) // pnl_pct
	assert.Equal(t, "unknown", rows[2][4])
}

func TestWriteCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
