package journal

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/rustyeddy/tradelog/trade"
)

const tradeColumns = `trade_id, owner_id, trade_date, symbol, direction, entry_price, exit_price, size, stop_price, pnl_usd, pnl_pct`

// GetTrade returns a single trade record by ID.
func (j *SQLite) GetTrade(tradeID string) (trade.Record, error) {
	row := j.db.QueryRow(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE trade_id = ?`, tradeID)

	rec, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return trade.Record{}, fmt.Errorf("trade %q: %w", tradeID, ErrNotFound)
	}
	if err != nil {
		return trade.Record{}, err
	}
	return rec, nil
}

// ListTrades returns every trade owned by ownerID, oldest first. Trades on
// the same date come back in insertion order.
func (j *SQLite) ListTrades(ownerID string) ([]trade.Record, error) {
	rows, err := j.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE owner_id = ?
		ORDER BY trade_date ASC, rowid ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

// ListTradesBetween returns ownerID's trades dated within [start, end).
func (j *SQLite) ListTradesBetween(ownerID string, start, end time.Time) ([]trade.Record, error) {
	rows, err := j.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE owner_id = ? AND trade_date >= ? AND trade_date < ?
		ORDER BY trade_date ASC, rowid ASC`, ownerID, start, end)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

func collectTrades(rows *sql.Rows) ([]trade.Record, error) {
	defer rows.Close()

	var out []trade.Record
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (trade.Record, error) {
	var (
		rec       trade.Record
		direction string
		entry     sql.NullFloat64
		exit      sql.NullFloat64
		stop      sql.NullFloat64
		pct       sql.NullFloat64
	)

	err := row.Scan(
		&rec.ID,
		&rec.OwnerID,
		&rec.Date,
		&rec.Symbol,
		&direction,
		&entry,
		&exit,
		&rec.Size,
		&stop,
		&rec.PnLUSD,
		&pct,
	)
	if err != nil {
		return trade.Record{}, err
	}

	rec.Direction = trade.ParseDirection(direction)
	rec.Entry = floatOrNaN(entry)
	rec.Exit = floatOrNaN(exit)
	if stop.Valid {
		v := stop.Float64
		rec.Stop = &v
	}
	if pct.Valid {
		v := pct.Float64
		rec.PnLPct = &v
	}
	return rec, nil
}

func floatOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
