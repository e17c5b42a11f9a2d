// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws benchmark series as line charts.
//
// The x axis is categorical: every distinct size label gets one slot,
// in the order labels are first seen across all series. The y axis is
// the measured time.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gobench/benchplot/benchgroup"
)

// Options controls the appearance of a chart.
type Options struct {
	Title    string
	Subtitle string // shown by HTML charts only
	XLabel   string
	YLabel   string

	// LogScale uses a logarithmic y axis. All values must be
	// positive.
	LogScale bool

	// Width and Height are the chart size in inches.
	Width, Height float64
}

// DefaultOptions returns the options the benchplot command uses.
func DefaultOptions() Options {
	return Options{
		Title:  "Benchmark Performance",
		XLabel: "Input Size",
		YLabel: "Time (ns)",
		Width:  8,
		Height: 5,
	}
}

var errNoSeries = errors.New("chart: no series to plot")

// categories returns the distinct labels of series in first-seen
// order and each label's slot on the x axis.
func categories(series []*benchgroup.Series) ([]string, map[string]int) {
	var cats []string
	index := make(map[string]int)
	for _, s := range series {
		for _, l := range s.Labels {
			if _, ok := index[l]; !ok {
				index[l] = len(cats)
				cats = append(cats, l)
			}
		}
	}
	return cats, index
}

// New builds a line chart with one line per series, a marker at each
// point, a legend and a background grid.
func New(series []*benchgroup.Series, opts Options) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, errNoSeries
	}
	if opts.LogScale {
		for _, s := range series {
			for i, v := range s.Values {
				if !(v > 0) {
					return nil, fmt.Errorf("chart: log scale needs positive values, %s/%s is %v", s.Name, s.Labels[i], v)
				}
			}
		}
	}
	cats, index := categories(series)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.BackgroundColor = color.White

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Dashes = grid.Vertical.Dashes
	p.Add(grid)

	for i, s := range series {
		xys := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			xys[j].X = float64(index[s.Labels[j]])
			xys[j].Y = v
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("chart: series %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = line.Color
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}

	if len(cats) > 0 {
		p.NominalX(cats...)
		// NominalX hides the axis line and tick marks; draw them
		// like the y axis.
		p.X.Width = p.Y.Width
		p.X.Tick.Length = p.Y.Tick.Length
		p.X.Tick.LineStyle.Width = p.Y.Tick.LineStyle.Width
		p.X.Min = -0.5
		p.X.Max = float64(len(cats)) - 0.5
		if len(cats) > 8 {
			p.X.Tick.Label.Rotation = -0.5
			p.X.Tick.Label.XAlign = draw.XLeft
			p.X.Tick.Label.YAlign = draw.YTop
		}
	}
	if opts.LogScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// Save writes p to path. The format is chosen from path's extension:
// .png, .svg, .pdf, .eps, .jpg, .jpeg, .tif or .tiff.
func Save(p *plot.Plot, path string, opts Options) error {
	w := vg.Length(opts.Width) * vg.Inch
	h := vg.Length(opts.Height) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("chart: saving %s: %w", path, err)
	}
	return nil
}

// Write draws series and writes the chart to path. A .html path gets
// an interactive chart (see HTML); anything else is passed to Save.
func Write(path string, series []*benchgroup.Series, opts Options) error {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := HTML(f, series, opts); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	p, err := New(series, opts)
	if err != nil {
		return err
	}
	return Save(p, path, opts)
}
