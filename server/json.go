package server

import (
	"math"
	"time"

	"github.com/rustyeddy/tradelog/stats"
	"github.com/rustyeddy/tradelog/trade"
)

// Wire shapes. Prices that normalized to NaN serialize as null; JSON has
// no NaN and the encoder would otherwise reject the whole payload.

type tradeJSON struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Symbol    string   `json:"symbol"`
	Direction string   `json:"direction"`
	Entry     *float64 `json:"entry"`
	Exit      *float64 `json:"exit"`
	Size      float64  `json:"size"`
	Stop      *float64 `json:"stop"`
	PnLUSD    float64  `json:"pnl_usd"`
	PnLPct    *float64 `json:"pnl_pct"`
}

type equityJSON struct {
	Date       string  `json:"date"`
	Cumulative float64 `json:"cumulative_pnl"`
}

type snapshotJSON struct {
	StartingCapital float64      `json:"starting_capital"`
	CurrentCapital  float64      `json:"current_capital"`
	TotalPnL        float64      `json:"total_pnl"`
	PctChange       float64      `json:"pct_change"`
	Trades          int          `json:"trades"`
	Wins            int          `json:"wins"`
	Losses          int          `json:"losses"`
	WinRate         float64      `json:"win_rate"`
	AvgRiskReward   float64      `json:"avg_risk_reward"`
	EquityCurve     []equityJSON `json:"equity_curve"`
}

func toTradeJSON(r trade.Record) tradeJSON {
	return tradeJSON{
		ID:        r.ID,
		Date:      r.Date.Format(time.DateOnly),
		Symbol:    r.Symbol,
		Direction: r.Direction.String(),
		Entry:     finitePtr(r.Entry),
		Exit:      finitePtr(r.Exit),
		Size:      r.Size,
		Stop:      r.Stop,
		PnLUSD:    r.PnLUSD,
		PnLPct:    r.PnLPct,
	}
}

func toSnapshotJSON(s stats.Snapshot) snapshotJSON {
	curve := make([]equityJSON, 0, len(s.EquityCurve))
	for _, p := range s.EquityCurve {
		curve = append(curve, equityJSON{
			Date:       p.Date.Format(time.DateOnly),
			Cumulative: p.Cumulative,
		})
	}
	return snapshotJSON{
		StartingCapital: s.StartingCapital,
		CurrentCapital:  s.CurrentCapital,
		TotalPnL:        s.TotalPnL,
		PctChange:       s.PctChange,
		Trades:          s.Trades,
		Wins:            s.Wins,
		Losses:          s.Losses,
		WinRate:         s.WinRate,
		AvgRiskReward:   s.AvgRiskReward,
		EquityCurve:     curve,
	}
}

func finitePtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
