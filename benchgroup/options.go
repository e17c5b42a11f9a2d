// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgroup

import (
	"fmt"
	"strings"
)

// Match selects which benchmark names belong to a series.
type Match int

const (
	// MatchPrefix assigns a name to series s if the name is s or
	// starts with s + "/".
	MatchPrefix Match = iota
	// MatchSubstring assigns a name to series s if s occurs
	// anywhere in the name. A name may then land in several series,
	// e.g. "SortStable/10" in both "Sort" and "SortStable".
	MatchSubstring
)

// NoDelim says what to do with a benchmark name that has no "/".
type NoDelim int

const (
	// NoDelimWhole uses the whole name as both the series and the
	// size label.
	NoDelimWhole NoDelim = iota
	// NoDelimSkip drops the benchmark and records a warning.
	NoDelimSkip
	// NoDelimError makes Group fail.
	NoDelimError
)

// Collapse selects how repeated measurements of one size within a
// series are merged into a single point.
type Collapse int

const (
	// CollapseNone keeps every measurement as its own point.
	CollapseNone Collapse = iota
	CollapseMean
	CollapseMedian
	CollapseMin
)

var (
	matchNames    = []string{"prefix", "substring"}
	noDelimNames  = []string{"whole", "skip", "error"}
	collapseNames = []string{"none", "mean", "median", "min"}
)

func (m Match) String() string    { return enumString(matchNames, int(m), "Match") }
func (d NoDelim) String() string  { return enumString(noDelimNames, int(d), "NoDelim") }
func (c Collapse) String() string { return enumString(collapseNames, int(c), "Collapse") }

// ParseMatch parses one of "prefix" or "substring".
func ParseMatch(s string) (Match, error) {
	i, err := parseEnum(matchNames, s, "match")
	return Match(i), err
}

// ParseNoDelim parses one of "whole", "skip" or "error".
func ParseNoDelim(s string) (NoDelim, error) {
	i, err := parseEnum(noDelimNames, s, "nodelim")
	return NoDelim(i), err
}

// ParseCollapse parses one of "none", "mean", "median" or "min".
func ParseCollapse(s string) (Collapse, error) {
	i, err := parseEnum(collapseNames, s, "collapse")
	return Collapse(i), err
}

func enumString(names []string, i int, typ string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s(%d)", typ, i)
}

func parseEnum(names []string, s, what string) (int, error) {
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s mode %q (want one of %s)", what, s, strings.Join(names, ", "))
}

// Options configures Group.
//
// The zero Options matches names by prefix, keeps names without a
// delimiter whole, keeps every point, drops aggregates, and plots
// real_time as written. Most callers want DefaultOptions.
type Options struct {
	Match    Match
	NoDelim  NoDelim
	Collapse Collapse

	// Aggregates keeps aggregate runs (mean, median, stddev, cv)
	// that Google Benchmark emits with --benchmark_repetitions.
	Aggregates bool

	// Normalize converts every real_time to nanoseconds using its
	// time_unit.
	Normalize bool

	// Sort orders series by name instead of by first appearance.
	Sort bool
}

// DefaultOptions returns the Options used by the benchplot command
// when no flags are given.
func DefaultOptions() Options {
	return Options{
		Aggregates: true,
		Normalize:  true,
	}
}
