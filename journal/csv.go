package journal

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/rustyeddy/tradelog/trade"
)

var csvHeader = []string{
	"trade_id", "owner_id", "date", "symbol", "direction",
	"entry", "exit", "size", "stop", "pnl_usd", "pnl_pct",
}

// WriteCSV exports records in the current schema's column layout. Unknown
// values (missing stop, unparsable legacy prices) export as empty cells.
func WriteCSV(w io.Writer, records []trade.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range records {
		row := []string{
			t.ID,
			t.OwnerID,
			t.Date.Format(time.DateOnly),
			t.Symbol,
			t.Direction.String(),
			f(t.Entry),
			f(t.Exit),
			f(t.Size),
			fptr(t.Stop),
			f(t.PnLUSD),
			fptr(t.PnLPct),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ""
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func fptr(x *float64) string {
	if x == nil {
		return ""
	}
	return f(*x)
}
