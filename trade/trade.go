// Package trade defines the canonical trade record and the write-boundary
// P/L formula shared by every insert path.
package trade

import (
	"strings"
	"time"
)

// Direction is the trade side. Records imported from schemas that predate
// the direction column normalize to Unknown, which matches only the
// unfiltered view.
type Direction int

const (
	Unknown Direction = iota
	Long
	Short
)

func (d Direction) String() string {
	switch d {
	case Long:
		return "long"
	case Short:
		return "short"
	}
	return "unknown"
}

// ParseDirection maps a stored direction label onto a Direction.
// Unrecognized labels yield Unknown rather than an error.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long":
		return Long
	case "short":
		return Short
	}
	return Unknown
}

// Record is the canonical post-normalization trade. PnLUSD is authoritative
// as stored; readers never recompute it from prices.
type Record struct {
	ID        string
	OwnerID   string
	Date      time.Time
	Symbol    string
	Direction Direction
	Entry     float64
	Exit      float64
	Size      float64
	Stop      *float64 // nil when the schema had no stop for this trade
	PnLUSD    float64
	PnLPct    *float64 // nil means unknown; 0 is a valid realized value
}

// RealizedPnL is the single write-time P/L formula. Long profits when price
// rises, Short when it falls. Unknown is priced as Long.
func RealizedPnL(d Direction, entry, exit, size float64) float64 {
	if d == Short {
		return (entry - exit) * size
	}
	return (exit - entry) * size
}
