package stats

import (
	"math"
	"sort"
	"time"

	"github.com/rustyeddy/tradelog/trade"
)

// Point is one step of the cumulative equity curve.
type Point struct {
	Date       time.Time
	Cumulative float64
}

// Snapshot is the full derived performance view over one filtered record
// set. Every field is defined for empty input: sums are 0, rates and ratios
// default to 0, the curve is empty.
type Snapshot struct {
	StartingCapital float64
	CurrentCapital  float64
	TotalPnL        float64
	PctChange       float64

	Trades int
	Wins   int
	Losses int

	WinRate       float64
	AvgRiskReward float64

	EquityCurve []Point
}

// Compute filters records and derives the complete snapshot. It is a total
// function: no input, including an empty set or a zero starting capital,
// produces NaN or Inf in the output.
func Compute(records []trade.Record, startingCapital float64, f Filter, now time.Time) Snapshot {
	kept := f.Apply(records, now)

	snap := Snapshot{
		StartingCapital: startingCapital,
		TotalPnL:        TotalPnL(kept),
		Trades:          len(kept),
		AvgRiskReward:   AvgRiskReward(kept),
		EquityCurve:     EquityCurve(kept),
	}
	snap.CurrentCapital = startingCapital + snap.TotalPnL
	if startingCapital != 0 {
		snap.PctChange = snap.TotalPnL / startingCapital * 100
	}
	snap.WinRate, snap.Wins, snap.Losses = WinRate(kept)
	return snap
}

// TotalPnL sums stored realized P/L. Order-independent.
func TotalPnL(records []trade.Record) float64 {
	var sum float64
	for _, r := range records {
		sum += r.PnLUSD
	}
	return sum
}

// WinRate classifies trades by the sign of stored P/L. Breakeven trades are
// neither wins nor losses and count toward neither side of the rate.
func WinRate(records []trade.Record) (rate float64, wins, losses int) {
	for _, r := range records {
		switch {
		case r.PnLUSD > 0:
			wins++
		case r.PnLUSD < 0:
			losses++
		}
	}
	if decided := wins + losses; decided > 0 {
		rate = float64(wins) / float64(decided) * 100
	}
	return rate, wins, losses
}

// AvgRiskReward averages reward/risk over the eligible records: those with
// a stop distinct from entry. A missing size scales as 1 for the ratio
// only. Non-finite ratios (bad prices, schema drift) are skipped; a
// zero-reward ratio of 0 is a valid data point.
func AvgRiskReward(records []trade.Record) float64 {
	var sum float64
	var n int
	for _, r := range records {
		if r.Stop == nil || *r.Stop == r.Entry {
			continue
		}
		size := r.Size
		if size <= 0 {
			size = 1
		}
		risk := math.Abs(r.Entry-*r.Stop) * size
		if risk <= 0 {
			continue
		}
		ratio := math.Abs(r.Exit-r.Entry) * size / risk
		if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			continue
		}
		sum += ratio
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// EquityCurve emits one point per record: cumulative P/L in date order.
// The sort is stable so trades sharing a date keep their storage order and
// recomputation always reproduces the same curve.
func EquityCurve(records []trade.Record) []Point {
	sorted := make([]trade.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	curve := make([]Point, 0, len(sorted))
	var cum float64
	for _, r := range sorted {
		cum += r.PnLUSD
		curve = append(curve, Point{Date: r.Date, Cumulative: cum})
	}
	return curve
}
