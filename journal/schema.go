package journal

// Entry and exit prices are nullable: a legacy import may carry values the
// normalizer could not parse, and those must round-trip as unknown rather
// than be coerced to 0. Insertion order (rowid) breaks date ties when the
// equity curve is rebuilt.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	trade_date DATETIME NOT NULL,
	symbol TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_price REAL,
	exit_price REAL,
	size REAL NOT NULL,
	stop_price REAL,
	pnl_usd REAL NOT NULL,
	pnl_pct REAL
);

CREATE INDEX IF NOT EXISTS idx_trades_owner_date ON trades(owner_id, trade_date);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
