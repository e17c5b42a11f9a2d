// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgroup

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gobench/benchplot/gbench"
)

func results(t *testing.T, data string) []*gbench.Result {
	t.Helper()
	r := gbench.NewReader(strings.NewReader(data), "test")
	var out []*gbench.Result
	for r.Scan() {
		out = append(out, r.Result())
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	return out
}

func mustGroup(t *testing.T, rs []*gbench.Result, opts Options) *Groups {
	t.Helper()
	g, err := Group(rs, opts)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGroupRoundTrip(t *testing.T) {
	rs := results(t, `{"benchmarks":[{"name":"Sort/10","real_time":5},{"name":"Sort/100","real_time":50},{"name":"Search/10","real_time":2}]}`)
	g := mustGroup(t, rs, DefaultOptions())

	want := []*Series{
		{Name: "Sort", Labels: []string{"10", "100"}, Values: []float64{5, 50}},
		{Name: "Search", Labels: []string{"10"}, Values: []float64{2}},
	}
	if diff := cmp.Diff(want, g.Series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Sort", "Search"}, g.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if len(g.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", g.Warnings)
	}
}

func TestGroupOrder(t *testing.T) {
	rs := results(t, `{"benchmarks":[
		{"name":"Zeta/1","real_time":1},
		{"name":"Alpha/1","real_time":1},
		{"name":"Zeta/2","real_time":2},
		{"name":"Mid/1","real_time":1}]}`)

	g := mustGroup(t, rs, DefaultOptions())
	if diff := cmp.Diff([]string{"Zeta", "Alpha", "Mid"}, g.Names()); diff != "" {
		t.Errorf("first-appearance order mismatch (-want +got):\n%s", diff)
	}

	opts := DefaultOptions()
	opts.Sort = true
	g = mustGroup(t, rs, opts)
	if diff := cmp.Diff([]string{"Alpha", "Mid", "Zeta"}, g.Names()); diff != "" {
		t.Errorf("sorted order mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupMatch(t *testing.T) {
	rs := results(t, `{"benchmarks":[
		{"name":"Sort/10","real_time":1},
		{"name":"SortStable/10","real_time":2},
		{"name":"Sort/20","real_time":3}]}`)

	g := mustGroup(t, rs, DefaultOptions())
	if diff := cmp.Diff([]float64{1, 3}, g.Lookup("Sort").Values); diff != "" {
		t.Errorf("prefix: Sort mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2}, g.Lookup("SortStable").Values); diff != "" {
		t.Errorf("prefix: SortStable mismatch (-want +got):\n%s", diff)
	}

	opts := DefaultOptions()
	opts.Match = MatchSubstring
	g = mustGroup(t, rs, opts)
	if diff := cmp.Diff([]float64{1, 2, 3}, g.Lookup("Sort").Values); diff != "" {
		t.Errorf("substring: Sort mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2}, g.Lookup("SortStable").Values); diff != "" {
		t.Errorf("substring: SortStable mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupPartition(t *testing.T) {
	rs := results(t, `{"benchmarks":[
		{"name":"A/x/1","real_time":1},
		{"name":"B/1","real_time":1},
		{"name":"A/x/2","real_time":1},
		{"name":"AB/1","real_time":1},
		{"name":"B/2","real_time":1}]}`)
	g := mustGroup(t, rs, DefaultOptions())
	total := 0
	for _, s := range g.Series {
		if len(s.Labels) != len(s.Values) {
			t.Errorf("%s: %d labels but %d values", s.Name, len(s.Labels), len(s.Values))
		}
		total += s.Len()
	}
	if total != len(rs) {
		t.Errorf("prefix matching should partition: want %d points, got %d", len(rs), total)
	}
	if diff := cmp.Diff([]string{"1", "2"}, g.Lookup("A").Labels); diff != "" {
		t.Errorf("size labels come from the last element (-want +got):\n%s", diff)
	}
}

func TestGroupNoDelim(t *testing.T) {
	rs := results(t, `{"benchmarks":[
		{"name":"Sort/10","real_time":1},
		{"name":"Lonely","real_time":7}]}`)

	g := mustGroup(t, rs, DefaultOptions())
	want := &Series{Name: "Lonely", Labels: []string{"Lonely"}, Values: []float64{7}}
	if diff := cmp.Diff(want, g.Lookup("Lonely")); diff != "" {
		t.Errorf("whole: mismatch (-want +got):\n%s", diff)
	}

	opts := DefaultOptions()
	opts.NoDelim = NoDelimSkip
	g = mustGroup(t, rs, opts)
	if diff := cmp.Diff([]string{"Sort"}, g.Names()); diff != "" {
		t.Errorf("skip: names mismatch (-want +got):\n%s", diff)
	}
	if len(g.Warnings) != 1 || !strings.Contains(g.Warnings[0].Error(), "Lonely") {
		t.Errorf("skip: want one warning naming Lonely, got %v", g.Warnings)
	}

	opts.NoDelim = NoDelimError
	if _, err := Group(rs, opts); err == nil || !strings.Contains(err.Error(), `"Lonely"`) {
		t.Errorf("error: want error naming Lonely, got %v", err)
	}
}

func TestGroupFiltering(t *testing.T) {
	rs := results(t, `{"benchmarks":[
		{"name":"Sort/10","run_type":"iteration","real_time":1},
		{"name":"Sort/10_mean","run_type":"aggregate","aggregate_name":"mean","real_time":1},
		{"name":"Sort/20","run_type":"iteration","real_time":0,"error_occurred":true,"error_message":"boom"}]}`)

	g := mustGroup(t, rs, DefaultOptions())
	if diff := cmp.Diff([]string{"10", "10_mean"}, g.Lookup("Sort").Labels); diff != "" {
		t.Errorf("aggregates kept: mismatch (-want +got):\n%s", diff)
	}
	if len(g.Warnings) != 1 || !strings.Contains(g.Warnings[0].Error(), "boom") {
		t.Errorf("want one warning for the failed run, got %v", g.Warnings)
	} else if msg := g.Warnings[0].Error(); !strings.HasPrefix(msg, "test:4: Sort/20: ") {
		t.Errorf("warning should start with the run's position, got %q", msg)
	}

	opts := DefaultOptions()
	opts.Aggregates = false
	g = mustGroup(t, rs, opts)
	if diff := cmp.Diff([]string{"10"}, g.Lookup("Sort").Labels); diff != "" {
		t.Errorf("aggregates dropped: mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupNormalize(t *testing.T) {
	rs := results(t, `{"benchmarks":[
		{"name":"A/1","real_time":2,"time_unit":"us"},
		{"name":"A/2","real_time":3,"time_unit":"ms"},
		{"name":"A/3","real_time":4}]}`)

	g := mustGroup(t, rs, DefaultOptions())
	if diff := cmp.Diff([]float64{2e3, 3e6, 4}, g.Lookup("A").Values); diff != "" {
		t.Errorf("normalized mismatch (-want +got):\n%s", diff)
	}

	g = mustGroup(t, rs, Options{})
	if diff := cmp.Diff([]float64{2, 3, 4}, g.Lookup("A").Values); diff != "" {
		t.Errorf("raw mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupCollapse(t *testing.T) {
	rs := results(t, `{"benchmarks":[
		{"name":"A/10","real_time":3},
		{"name":"A/20","real_time":8},
		{"name":"A/10","real_time":5},
		{"name":"A/20","real_time":6}]}`)

	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, test := range []struct {
		how  Collapse
		want []float64
	}{
		{CollapseMean, []float64{4, 7}},
		{CollapseMedian, []float64{4, 7}},
		{CollapseMin, []float64{3, 6}},
	} {
		opts := DefaultOptions()
		opts.Collapse = test.how
		s := mustGroup(t, rs, opts).Lookup("A")
		if diff := cmp.Diff([]string{"10", "20"}, s.Labels); diff != "" {
			t.Errorf("%v: labels mismatch (-want +got):\n%s", test.how, diff)
		}
		if diff := cmp.Diff(test.want, s.Values, approx); diff != "" {
			t.Errorf("%v: values mismatch (-want +got):\n%s", test.how, diff)
		}
	}

	s := mustGroup(t, rs, DefaultOptions()).Lookup("A")
	if s.Len() != 4 {
		t.Errorf("none: want 4 points, got %d", s.Len())
	}

	// A lopsided odd count, where the median is not the mean, and an
	// even count, where it falls between the two middle values.
	rs = results(t, `{"benchmarks":[
		{"name":"B/odd","real_time":1},
		{"name":"B/odd","real_time":2},
		{"name":"B/odd","real_time":10},
		{"name":"B/even","real_time":1},
		{"name":"B/even","real_time":3}]}`)
	opts := DefaultOptions()
	opts.Collapse = CollapseMedian
	s = mustGroup(t, rs, opts).Lookup("B")
	if diff := cmp.Diff([]string{"odd", "even"}, s.Labels); diff != "" {
		t.Errorf("median: labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2, 2}, s.Values, approx); diff != "" {
		t.Errorf("median: values mismatch (-want +got):\n%s", diff)
	}
}

func TestSummary(t *testing.T) {
	s := &Series{Name: "A", Labels: []string{"1", "2", "3"}, Values: []float64{2, 8, 4}}
	got := s.Summary()
	want := Summary{N: 3, Min: 2, Max: 8, Mean: 14.0 / 3, GeoMean: 4, Spread: 4, MinLabel: "1", MaxLabel: "2"}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	if got := (&Series{}).Summary(); got != (Summary{}) {
		t.Errorf("empty series: want zero summary, got %+v", got)
	}
	if got := (&Series{Labels: []string{"a"}, Values: []float64{0}}).Summary(); got.Spread != 0 || math.IsNaN(got.Mean) {
		t.Errorf("zero value: want zero spread and a number mean, got %+v", got)
	}
}

func TestNames(t *testing.T) {
	for _, test := range []struct {
		name, series, size string
		ok                 bool
	}{
		{"Sort/10", "Sort", "10", true},
		{"BM_Sort/random/1024", "BM_Sort", "1024", true},
		{"Plain", "Plain", "Plain", false},
		{"/5", "", "5", true},
		{"Trailing/", "Trailing", "", true},
	} {
		series, ok := SeriesOf(test.name)
		if series != test.series || ok != test.ok {
			t.Errorf("SeriesOf(%q) = %q, %v; want %q, %v", test.name, series, ok, test.series, test.ok)
		}
		if size := SizeOf(test.name); size != test.size {
			t.Errorf("SizeOf(%q) = %q; want %q", test.name, size, test.size)
		}
	}
}

func TestParseOptions(t *testing.T) {
	if m, err := ParseMatch("Substring"); err != nil || m != MatchSubstring {
		t.Errorf("ParseMatch: got %v, %v", m, err)
	}
	if d, err := ParseNoDelim("skip"); err != nil || d != NoDelimSkip {
		t.Errorf("ParseNoDelim: got %v, %v", d, err)
	}
	if c, err := ParseCollapse("median"); err != nil || c != CollapseMedian {
		t.Errorf("ParseCollapse: got %v, %v", c, err)
	}
	if _, err := ParseCollapse("max"); err == nil {
		t.Errorf("ParseCollapse(max): want error")
	}
	if got := Collapse(9).String(); got != "Collapse(9)" {
		t.Errorf("want Collapse(9), got %s", got)
	}
}
