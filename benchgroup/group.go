// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchgroup partitions benchmark results into plottable
// series using the "<series>/<args>/<size>" naming convention.
//
// The series of a benchmark is the part of its name before the first
// "/" and its size label is the part after the last "/". For
// example, "BM_Sort/random/1024" is the point labeled "1024" of
// series "BM_Sort".
package benchgroup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobench/benchplot/gbench"
)

// A Series is one plotted line: a sequence of size labels and the
// timing measured at each, in input order.
//
// Labels and Values always have the same length.
type Series struct {
	Name   string
	Labels []string
	Values []float64
}

// Len returns the number of points in s.
func (s *Series) Len() int {
	return len(s.Values)
}

// Groups is the result of Group.
type Groups struct {
	Series []*Series

	// Warnings lists benchmarks that were dropped and why. These
	// don't prevent plotting but should be shown to the user.
	Warnings []error
}

// Names returns the series names in plotting order.
func (g *Groups) Names() []string {
	names := make([]string, len(g.Series))
	for i, s := range g.Series {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the series named name, or nil.
func (g *Groups) Lookup(name string) *Series {
	for _, s := range g.Series {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// SeriesOf returns the series part of a benchmark name: everything
// before the first "/". If name has no "/", SeriesOf returns name and
// false.
func SeriesOf(name string) (string, bool) {
	i := strings.IndexByte(name, '/')
	if i < 0 {
		return name, false
	}
	return name[:i], true
}

// SizeOf returns the size label of a benchmark name: everything after
// the last "/", or all of name if it has no "/".
func SizeOf(name string) string {
	return name[strings.LastIndexByte(name, '/')+1:]
}

func (m Match) matches(series, name string) bool {
	switch m {
	case MatchSubstring:
		return strings.Contains(name, series)
	default:
		return name == series || strings.HasPrefix(name, series+"/")
	}
}

// Group partitions results into series according to opts.
//
// Series appear in the order their first benchmark appears in
// results, unless opts.Sort is set. Within a series, points keep
// their order in results.
func Group(results []*gbench.Result, opts Options) (*Groups, error) {
	g := new(Groups)
	warn := func(r *gbench.Result, format string, args ...interface{}) {
		file, line := r.Pos()
		g.Warnings = append(g.Warnings, fmt.Errorf("%s:%d: %s: %s", file, line, r.Name, fmt.Sprintf(format, args...)))
	}

	var kept []*gbench.Result
	var order []string
	seen := make(map[string]bool)
	for _, r := range results {
		if r.IsAggregate() && !opts.Aggregates {
			continue
		}
		if r.ErrorOccurred {
			warn(r, "skipping failed benchmark: %s", r.ErrorMessage)
			continue
		}
		series, ok := SeriesOf(r.Name)
		if !ok {
			switch opts.NoDelim {
			case NoDelimSkip:
				warn(r, "skipping benchmark with no \"/\" in its name")
				continue
			case NoDelimError:
				file, line := r.Pos()
				return nil, fmt.Errorf("%s:%d: benchmark name %q has no \"/\"", file, line, r.Name)
			}
		}
		kept = append(kept, r)
		if !seen[series] {
			seen[series] = true
			order = append(order, series)
		}
	}
	if opts.Sort {
		sort.Strings(order)
	}

	for _, name := range order {
		s := &Series{Name: name}
		for _, r := range kept {
			if !opts.Match.matches(name, r.Name) {
				continue
			}
			v := r.RealTime
			if opts.Normalize {
				var err error
				if v, err = r.RealTimeNs(); err != nil {
					return nil, err
				}
			}
			s.Labels = append(s.Labels, SizeOf(r.Name))
			s.Values = append(s.Values, v)
		}
		if opts.Collapse != CollapseNone {
			s.collapse(opts.Collapse)
		}
		g.Series = append(g.Series, s)
	}
	return g, nil
}
