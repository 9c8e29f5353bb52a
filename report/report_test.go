package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradelog/stats"
)

func TestFprint(t *testing.T) {
	t.Parallel()

	snap := stats.Snapshot{
		StartingCapital: 10000,
		CurrentCapital:  10050,
		TotalPnL:        50,
		PctChange:       0.5,
		Trades:          2,
		Wins:            1,
		Losses:          1,
		WinRate:         50,
		AvgRiskReward:   2,
		EquityCurve: []stats.Point{
			{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Cumulative: 100},
			{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Cumulative: 50},
		},
	}

	var buf bytes.Buffer
	Fprint(&buf, snap)

	out := buf.String()
	assert.Contains(t, out, "Current Capital:  10050.00 USD")
	assert.Contains(t, out, "Total PnL:        +50.00 USD")
	assert.Contains(t, out, "Win Rate:         50.00%")
	assert.Contains(t, out, "Avg Risk:Reward:  2.00 R")
	assert.Contains(t, out, "2024-01-03")
}

func TestFprintEmptySnapshot(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Fprint(&buf, stats.Snapshot{StartingCapital: 10000, CurrentCapital: 10000})

	out := buf.String()
	assert.Contains(t, out, "Trades:           0")
	assert.NotContains(t, out, "Equity Curve")
}
