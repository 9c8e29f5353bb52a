package journal

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradelog/trade"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) InsertTrade(t trade.Record) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, owner_id, trade_date, symbol, direction, entry_price, exit_price, size, stop_price, pnl_usd, pnl_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OwnerID, t.Date, t.Symbol, t.Direction.String(),
		nullPrice(t.Entry), nullPrice(t.Exit), t.Size,
		nullPtr(t.Stop), t.PnLUSD, nullPtr(t.PnLPct),
	)
	return err
}

func (j *SQLite) StartingCapital() (float64, error) {
	var raw string
	err := j.db.QueryRow(`SELECT value FROM settings WHERE key = 'starting_capital'`).Scan(&raw)
	if err == sql.ErrNoRows {
		return DefaultStartingCapital, nil
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("stored starting capital %q: %w", raw, err)
	}
	return v, nil
}

func (j *SQLite) SetStartingCapital(v float64) error {
	_, err := j.db.Exec(`
		INSERT INTO settings (key, value) VALUES ('starting_capital', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		strconv.FormatFloat(v, 'f', -1, 64),
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

// nullPrice maps a non-finite price onto NULL. SQLite has no NaN and the
// value must stay distinguishable from a real 0.
func nullPrice(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func nullPtr(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
