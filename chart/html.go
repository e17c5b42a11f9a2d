// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/gobench/benchplot/benchgroup"
)

// pixelsPerInch converts Options sizes for the browser.
const pixelsPerInch = 96

// HTML writes a self-contained page with an interactive line chart of
// series to w. Hovering shows the values at a size; clicking a legend
// entry hides its line.
//
// Sizes missing from a series are skipped by its line. Repeated sizes
// get one marker per measurement, as in New.
func HTML(w io.Writer, series []*benchgroup.Series, o Options) error {
	if len(series) == 0 {
		return errNoSeries
	}
	cats, index := categories(series)

	yAxis := opts.YAxis{
		Name:      o.YLabel,
		Type:      "value",
		SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
	}
	if o.LogScale {
		yAxis.Type = "log"
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     fmt.Sprintf("%dpx", int(o.Width*pixelsPerInch)),
			Height:    fmt.Sprintf("%dpx", int(o.Height*pixelsPerInch)),
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: o.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      o.XLabel,
			Type:      "category",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(yAxis),
	)
	line.SetXAxis(cats)

	for _, s := range series {
		// Points are [category index, value] pairs in input order, so
		// a size measured more than once keeps every measurement.
		data := make([]opts.LineData, len(s.Values))
		for j, v := range s.Values {
			data[j] = opts.LineData{Value: []interface{}{index[s.Labels[j]], v}}
		}
		line.AddSeries(s.Name, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("chart: rendering HTML: %w", err)
	}
	return nil
}
