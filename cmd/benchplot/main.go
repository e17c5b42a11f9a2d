// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot charts Google Benchmark results.
//
// Usage:
//
//	benchplot [flags] results.json [more.json ...]
//
// Each input is a JSON file written by a Google Benchmark binary run
// with --benchmark_format=json (or --benchmark_out=file). Benchplot
// groups benchmarks into series by name: everything before the first
// "/" names the series, and everything after the last "/" is the
// input size. For example, BM_Sort/random/1024 is the 1024 point of
// series BM_Sort.
//
// Benchplot prints the series it found and writes a line chart with
// one line per series, input sizes on the x axis and real time in
// nanoseconds on the y axis. By default the chart is written as PNG in
// the current directory, named after the first input
// (results.json becomes results.png). The -o flag picks another file;
// its extension selects the format: .png, .svg, .pdf, .jpg, .tif, .eps,
// or .html for an interactive chart. The -open flag shows the chart
// in the system viewer once it is written.
//
// Grouping flags:
//
//	-match prefix|substring
//		How a benchmark is assigned to a series. With prefix (the
//		default) Sort/10 belongs to Sort but SortStable/10 does not.
//		With substring, any name containing the series name belongs
//		to it.
//	-nodelim whole|skip|error
//		What to do with names without a "/". whole (the default)
//		uses the name as both series and size.
//	-collapse none|mean|median|min
//		Merge repeated measurements of a size (from
//		--benchmark_repetitions) into one point.
//	-aggregates=false
//		Drop the mean/median/stddev rows Google Benchmark adds when
//		repetitions are enabled.
//	-sort
//		Order series by name instead of by first appearance.
//
// The -summary flag prints a table of per-series statistics, and
// -html writes the same table with the chart as an HTML report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gobench/benchplot/benchgroup"
	"github.com/gobench/benchplot/chart"
	"github.com/gobench/benchplot/gbench"
	"github.com/gobench/benchplot/internal/texttab"
	"github.com/gobench/benchplot/internal/timefmt"
	"github.com/gobench/benchplot/report"
)

var (
	// errNoPath means no input was given. The message has already
	// been printed.
	errNoPath = errors.New("no input files")
	// errUsage means the flags were bad. Usage has already been
	// printed.
	errUsage = errors.New("usage")
)

func main() {
	err := benchplot(context.Background(), os.Stdout, os.Stderr, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		os.Exit(2)
	case errors.Is(err, errNoPath):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "benchplot: %v\n", err)
		os.Exit(1)
	}
}

func benchplot(ctx context.Context, w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: benchplot [flags] results.json [more.json ...]\n")
		flags.PrintDefaults()
	}

	copts := chart.DefaultOptions()
	var (
		flagOut      = flags.String("o", "", "write the chart to `file` (default: first input with .png)")
		flagOpen     = flags.Bool("open", false, "open the chart in the system viewer")
		flagHTML     = flags.String("html", "", "also write an HTML summary report to `file`")
		flagSummary  = flags.Bool("summary", false, "print per-series statistics")
		flagMatch    = flags.String("match", "prefix", "series `matching`: prefix or substring")
		flagNoDelim  = flags.String("nodelim", "whole", "names without \"/\": whole, skip or error")
		flagCollapse = flags.String("collapse", "none", "merge repeated sizes: none, mean, median or min")
		flagAggr     = flags.Bool("aggregates", true, "keep aggregate rows (mean, median, stddev)")
		flagSort     = flags.Bool("sort", false, "order series by name")
		flagVerbose  = flags.Bool("v", false, "log debugging output")
	)
	flags.StringVar(&copts.Title, "title", copts.Title, "chart `title`")
	flags.BoolVar(&copts.LogScale, "log", copts.LogScale, "use a log scale for time")
	flags.Float64Var(&copts.Width, "width", copts.Width, "chart width in `inches`")
	flags.Float64Var(&copts.Height, "height", copts.Height, "chart height in `inches`")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errUsage
	}
	if flags.NArg() == 0 {
		fmt.Fprintln(w, "Require filepath")
		return errNoPath
	}

	gopts := benchgroup.DefaultOptions()
	var err error
	if gopts.Match, err = benchgroup.ParseMatch(*flagMatch); err != nil {
		return err
	}
	if gopts.NoDelim, err = benchgroup.ParseNoDelim(*flagNoDelim); err != nil {
		return err
	}
	if gopts.Collapse, err = benchgroup.ParseCollapse(*flagCollapse); err != nil {
		return err
	}
	gopts.Aggregates = *flagAggr
	gopts.Sort = *flagSort

	logger := newLogger(wErr, *flagVerbose)
	defer logger.Sync()

	// Read inputs.
	files := gbench.Files{Paths: flags.Args()}
	var results []*gbench.Result
	for files.Scan() {
		results = append(results, files.Result())
	}
	if err := files.Err(); err != nil {
		return err
	}
	logger.Debug("read benchmarks", zap.Strings("files", files.Paths), zap.Int("count", len(results)))

	groups, err := benchgroup.Group(results, gopts)
	if err != nil {
		return err
	}
	for _, warning := range groups.Warnings {
		logger.Warn("skipped benchmark", zap.Error(warning))
	}
	fmt.Fprintln(w, groups.Names())
	if *flagSummary {
		if err := writeSummary(w, groups.Series); err != nil {
			return err
		}
	}

	out := *flagOut
	if out == "" {
		out = defaultOutput(flags.Arg(0))
	}
	copts.Subtitle = subtitle(files.Context())
	if err := chart.Write(out, groups.Series, copts); err != nil {
		return err
	}
	logger.Debug("wrote chart", zap.String("path", out), zap.Int("series", len(groups.Series)))

	if *flagHTML != "" {
		if err := writeReport(*flagHTML, out, copts.Title, files.Paths, files.Context(), groups.Series); err != nil {
			return err
		}
		logger.Debug("wrote report", zap.String("path", *flagHTML))
	}

	if *flagOpen {
		if err := chart.Open(ctx, out); err != nil {
			return err
		}
	}
	return nil
}

// newLogger returns a console logger writing to w without timestamps,
// so diagnostics stay readable next to the command's normal output.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.StacktraceKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// defaultOutput names the chart after the input: dir/results.json
// becomes results.png in the current directory.
func defaultOutput(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

func subtitle(c *gbench.Context) string {
	if c == nil {
		return ""
	}
	var parts []string
	if c.HostName != "" {
		parts = append(parts, c.HostName)
	}
	if c.NumCPUs != 0 {
		parts = append(parts, fmt.Sprintf("%d CPUs", c.NumCPUs))
	}
	if c.Date != "" {
		parts = append(parts, c.Date)
	}
	return strings.Join(parts, ", ")
}

func writeSummary(w io.Writer, series []*benchgroup.Series) error {
	sums := make([]benchgroup.Summary, len(series))
	var mins, maxes, means, geomeans []float64
	for i, s := range series {
		sums[i] = s.Summary()
		mins = append(mins, sums[i].Min)
		maxes = append(maxes, sums[i].Max)
		means = append(means, sums[i].Mean)
		geomeans = append(geomeans, sums[i].GeoMean)
	}
	// Each time column shares one unit.
	minScale, maxScale := timefmt.CommonScale(mins), timefmt.CommonScale(maxes)
	meanScale, geoScale := timefmt.CommonScale(means), timefmt.CommonScale(geomeans)

	var tab texttab.Table
	tab.Row().Cell("series").Cell("points", texttab.Right).
		Cell("min", texttab.Right).Cell("at").
		Cell("max", texttab.Right).Cell("at").
		Cell("mean", texttab.Right).Cell("geomean", texttab.Right)
	for i, s := range series {
		sum := sums[i]
		tab.Row().Cell(s.Name).Cell(fmt.Sprint(sum.N), texttab.Right).
			Cell(minScale.Format(sum.Min), texttab.Right).Cell(sum.MinLabel).
			Cell(maxScale.Format(sum.Max), texttab.Right).Cell(sum.MaxLabel).
			Cell(meanScale.Format(sum.Mean), texttab.Right).
			Cell(geoScale.Format(sum.GeoMean), texttab.Right)
	}
	return tab.Format(w)
}

func writeReport(path, chartPath, title string, inputs []string, c *gbench.Context, series []*benchgroup.Series) error {
	// Link the chart relative to the report when we can.
	if rel, err := filepath.Rel(filepath.Dir(path), chartPath); err == nil {
		chartPath = filepath.ToSlash(rel)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	p := &report.Page{
		Title:   title,
		Inputs:  inputs,
		Context: c,
		Chart:   chartPath,
		Series:  series,
	}
	if err := report.Write(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
