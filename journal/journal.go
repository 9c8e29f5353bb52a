// Package journal is the persistence collaborator: it stores trade records
// and the single starting-capital setting. The statistics engine never
// talks to it directly; callers load records here and hand them to stats.
package journal

import (
	"errors"
	"time"

	"github.com/rustyeddy/tradelog/trade"
)

// ErrNotFound reports a lookup for a trade id that is not in the store.
var ErrNotFound = errors.New("trade not found")

// DefaultStartingCapital applies when no capital has ever been persisted.
const DefaultStartingCapital = 10000

type Store interface {
	InsertTrade(trade.Record) error
	GetTrade(id string) (trade.Record, error)
	ListTrades(ownerID string) ([]trade.Record, error)
	ListTradesBetween(ownerID string, start, end time.Time) ([]trade.Record, error)

	StartingCapital() (float64, error)
	SetStartingCapital(v float64) error

	Close() error
}
