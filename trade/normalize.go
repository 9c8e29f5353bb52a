package trade

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Normalize maps one raw stored record onto a canonical Record. Field names
// drifted across schema revisions, so each field resolves through an
// explicit fallback chain, first match wins:
//
//	PnLUSD:  pnl_usd -> legacy pnl -> 0
//	PnLPct:  pnl_pct -> nil (0 must stay distinguishable from unknown)
//	Entry/Exit/Size/Stop: current names only, legacy schemas predate them
//	Direction: type ("long"/"short") -> Unknown
//
// Normalize never fails: a missing or malformed field degrades to its
// documented default. Malformed entry/exit values become NaN, not 0, so
// ratio math can exclude them without corrupting capital sums.
func Normalize(raw map[string]any) Record {
	rec := Record{
		ID:        stringField(raw, "id"),
		OwnerID:   stringField(raw, "user_id"),
		Symbol:    stringField(raw, "symbol"),
		Direction: ParseDirection(stringField(raw, "type")),
		Date:      dateField(raw, "date"),
		Entry:     priceField(raw, "entry"),
		Exit:      priceField(raw, "exit"),
	}

	if v, ok := numField(raw, "size"); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
		rec.Size = v
	}
	if v, ok := numField(raw, "stop"); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
		stop := v
		rec.Stop = &stop
	}

	if v, ok := numField(raw, "pnl_usd"); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
		rec.PnLUSD = v
	} else if v, ok := numField(raw, "pnl"); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
		rec.PnLUSD = v
	}

	if v, ok := numField(raw, "pnl_pct"); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
		pct := v
		rec.PnLPct = &pct
	}

	return rec
}

// priceField reads a price column. Absent or malformed values become NaN so
// downstream ratio computations skip them.
func priceField(raw map[string]any, key string) float64 {
	if v, ok := numField(raw, key); ok {
		return v
	}
	return math.NaN()
}

func numField(raw map[string]any, key string) (float64, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func stringField(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case json.Number:
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

func dateField(raw map[string]any, key string) time.Time {
	v, ok := raw[key]
	if !ok || v == nil {
		return time.Time{}
	}
	if t, ok := v.(time.Time); ok {
		return t
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
