// Package stats derives performance figures from a journal's trade records.
// Everything here is pure: callers pass "now" explicitly and the same inputs
// always produce the same outputs.
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradelog/trade"
)

// Side restricts a computation to one trade direction.
type Side int

const (
	AnySide Side = iota
	LongOnly
	ShortOnly
)

// ParseSide accepts the filter labels used by the presentation layers.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return AnySide, nil
	case "long":
		return LongOnly, nil
	case "short":
		return ShortOnly, nil
	}
	return AnySide, fmt.Errorf("unknown direction filter %q", s)
}

func (s Side) matches(d trade.Direction) bool {
	switch s {
	case LongOnly:
		return d == trade.Long
	case ShortOnly:
		return d == trade.Short
	}
	return true
}

// Window is a time filter anchored to "now".
type Window int

const (
	AllTime Window = iota
	ThisWeek
	ThisMonth
	Last3Months
	Last6Months
	Last12Months
)

// ParseWindow accepts the period labels used by the presentation layers.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return AllTime, nil
	case "week":
		return ThisWeek, nil
	case "month":
		return ThisMonth, nil
	case "3months":
		return Last3Months, nil
	case "6months":
		return Last6Months, nil
	case "12months":
		return Last12Months, nil
	}
	return AllTime, fmt.Errorf("unknown time window %q", s)
}

// Start returns the inclusive lower bound of the window relative to now.
// The second return is false for AllTime, which has no lower bound.
func (w Window) Start(now time.Time) (time.Time, bool) {
	switch w {
	case ThisWeek:
		// Most recent Monday at start of day; on a Sunday the week began
		// six days earlier.
		back := int(now.Weekday()) - 1
		if now.Weekday() == time.Sunday {
			back = 6
		}
		return time.Date(now.Year(), now.Month(), now.Day()-back, 0, 0, 0, 0, now.Location()), true
	case ThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case Last3Months:
		return now.AddDate(0, -3, 0), true
	case Last6Months:
		return now.AddDate(0, -6, 0), true
	case Last12Months:
		return now.AddDate(-1, 0, 0), true
	}
	return time.Time{}, false
}

// Filter selects records by direction and time window. The two conditions
// are independent and conjunctive.
type Filter struct {
	Side   Side
	Window Window
}

// Apply returns the records matching f. Input order is preserved; the
// result is a fresh slice and never aliases the input.
func (f Filter) Apply(records []trade.Record, now time.Time) []trade.Record {
	start, bounded := f.Window.Start(now)

	out := make([]trade.Record, 0, len(records))
	for _, r := range records {
		if !f.Side.matches(r.Direction) {
			continue
		}
		if bounded && r.Date.Before(start) {
			continue
		}
		out = append(out, r)
	}
	return out
}
