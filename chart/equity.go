// Package chart renders the equity curve as a standalone HTML chart.
package chart

import (
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rustyeddy/tradelog/stats"
)

const colorEquity = "#3b82f6"

// RenderEquity writes an HTML page with one cumulative-PnL line, one point
// per trade in date order.
func RenderEquity(w io.Writer, curve []stats.Point) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Equity Curve",
			Subtitle: "Cumulative realized PnL (USD)",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	xAxis := make([]string, len(curve))
	data := make([]opts.LineData, len(curve))
	for i, p := range curve {
		xAxis[i] = p.Date.Format(time.DateOnly)
		data[i] = opts.LineData{Value: p.Cumulative}
	}

	line.SetXAxis(xAxis)
	line.AddSeries("Cumulative PnL", data,
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorEquity, Width: 2}),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)

	return line.Render(w)
}
