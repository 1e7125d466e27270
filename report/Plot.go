// Package report renders the results of an experiment: learning curves
// as HTML charts and greedy policies and state values as text
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"
)

// Series is a named sequence of per-episode values
type Series struct {
	Name   string
	Values []float64
}

// Smooth returns the moving average of values over window episodes.
// The first window-1 averages use the episodes seen so far.
func Smooth(values []float64, window int) []float64 {
	if window < 2 {
		return append([]float64(nil), values...)
	}

	smoothed := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		smoothed[i] = stat.Mean(values[start:i+1], nil)
	}
	return smoothed
}

// PlotReturns renders a line chart of each series against the episode
// number as an HTML page written to w. Series may differ in length.
func PlotReturns(w io.Writer, title string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("plotReturns: no series to plot")
	}

	episodes := 0
	for _, s := range series {
		if len(s.Values) > episodes {
			episodes = len(s.Values)
		}
	}

	xAxis := make([]int, episodes)
	for i := range xAxis {
		xAxis[i] = i + 1
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Return"}),
	)
	line.SetXAxis(xAxis)

	for _, s := range series {
		items := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			items[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, items)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("plotReturns: %w", err)
	}
	return nil
}
