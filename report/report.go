// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders an HTML summary of benchmark series.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/safehtml/template"

	"github.com/gobench/benchplot/benchgroup"
	"github.com/gobench/benchplot/gbench"
	"github.com/gobench/benchplot/internal/timefmt"
)

// A Page is the input to Write.
type Page struct {
	Title string

	// Inputs are the result files the series were read from.
	Inputs []string

	// Context is the context of the first input, if it had one.
	Context *gbench.Context

	// Chart is the chart file, relative to the report. An .html
	// chart is linked; any other chart is embedded as an image.
	Chart string

	Series []*benchgroup.Series
}

type row struct {
	Name          string
	N             int
	Min, Max      string
	MinAt, MaxAt  string
	Mean, GeoMean string
	Spread        string
}

type pageData struct {
	*Page
	ChartIsHTML bool
	Rows        []row
}

var pageTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; }
.series { border-collapse: collapse; }
.series th { text-align: left; border-bottom: 1px solid #666; padding: 0 1em; }
.series td { padding: 0 1em; }
.series td.num { text-align: right; }
.context dt { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- if .Inputs}}
<p>Inputs:{{range .Inputs}} <code>{{.}}</code>{{end}}</p>
{{- end}}
{{- with .Context}}
<dl class='context'>
{{- if .Date}}<dt>date<dd>{{.Date}}{{end}}
{{- if .HostName}}<dt>host<dd>{{.HostName}}{{end}}
{{- if .Executable}}<dt>executable<dd>{{.Executable}}{{end}}
{{- if .NumCPUs}}<dt>cpus<dd>{{.NumCPUs}} × {{.MHzPerCPU}} MHz{{end}}
{{- if .LibraryBuildType}}<dt>build<dd>{{.LibraryBuildType}}{{end}}
</dl>
{{- end}}
{{- if .Chart}}
{{- if .ChartIsHTML}}
<p><a href='{{.Chart}}'>Interactive chart</a></p>
{{- else}}
<p><img src='{{.Chart}}' alt='{{.Title}}'></p>
{{- end}}
{{- end}}
<table class='series'>
<tr><th>series<th>points<th>min<th>at<th>max<th>at<th>mean<th>geomean<th>max/min
{{- range .Rows}}
<tr><td>{{.Name}}<td class='num'>{{.N}}<td class='num'>{{.Min}}<td>{{.MinAt}}<td class='num'>{{.Max}}<td>{{.MaxAt}}<td class='num'>{{.Mean}}<td class='num'>{{.GeoMean}}<td class='num'>{{.Spread}}
{{- end}}
</table>
</body>
</html>
`))

// Write renders p as an HTML page to w.
func Write(w io.Writer, p *Page) error {
	data := pageData{
		Page:        p,
		ChartIsHTML: strings.EqualFold(filepath.Ext(p.Chart), ".html"),
	}
	sums := make([]benchgroup.Summary, len(p.Series))
	var mins, maxes, means, geomeans []float64
	for i, s := range p.Series {
		sums[i] = s.Summary()
		mins = append(mins, sums[i].Min)
		maxes = append(maxes, sums[i].Max)
		means = append(means, sums[i].Mean)
		geomeans = append(geomeans, sums[i].GeoMean)
	}
	minScale, maxScale := timefmt.CommonScale(mins), timefmt.CommonScale(maxes)
	meanScale, geoScale := timefmt.CommonScale(means), timefmt.CommonScale(geomeans)
	for i, s := range p.Series {
		sum := sums[i]
		data.Rows = append(data.Rows, row{
			Name:    s.Name,
			N:       sum.N,
			Min:     minScale.Format(sum.Min),
			Max:     maxScale.Format(sum.Max),
			MinAt:   sum.MinLabel,
			MaxAt:   sum.MaxLabel,
			Mean:    meanScale.Format(sum.Mean),
			GeoMean: geoScale.Format(sum.GeoMean),
			Spread:  spread(sum.Spread),
		})
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

func spread(x float64) string {
	if x == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f×", x)
}
