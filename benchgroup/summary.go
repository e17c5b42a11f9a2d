// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgroup

import "github.com/aclements/go-moremath/stats"

// collapse merges points that share a size label into one, placed
// where the label first appeared.
func (s *Series) collapse(how Collapse) {
	var labels []string
	byLabel := make(map[string][]float64)
	for i, l := range s.Labels {
		if _, ok := byLabel[l]; !ok {
			labels = append(labels, l)
		}
		byLabel[l] = append(byLabel[l], s.Values[i])
	}
	if len(labels) == len(s.Labels) {
		return
	}

	values := make([]float64, len(labels))
	for i, l := range labels {
		xs := byLabel[l]
		switch how {
		case CollapseMean:
			values[i] = stats.Mean(xs)
		case CollapseMedian:
			values[i] = stats.Sample{Xs: xs}.Quantile(0.5)
		case CollapseMin:
			values[i], _ = stats.Bounds(xs)
		}
	}
	s.Labels, s.Values = labels, values
}

// A Summary describes the distribution of a series' values.
type Summary struct {
	N        int
	Min, Max float64
	Mean     float64
	GeoMean  float64
	Spread   float64 // Max / Min
	MinLabel string  // label of the fastest point
	MaxLabel string  // label of the slowest point
}

// Summary returns summary statistics over the values of s.
// For an empty series, all statistics are zero.
func (s *Series) Summary() Summary {
	if len(s.Values) == 0 {
		return Summary{}
	}
	sum := Summary{N: len(s.Values)}
	sum.Min, sum.Max = stats.Bounds(s.Values)
	sum.Mean = stats.Mean(s.Values)
	sum.GeoMean = stats.GeoMean(s.Values)
	if sum.Min != 0 {
		sum.Spread = sum.Max / sum.Min
	}
	for i, v := range s.Values {
		if v == sum.Min && sum.MinLabel == "" {
			sum.MinLabel = s.Labels[i]
		}
		if v == sum.Max && sum.MaxLabel == "" {
			sum.MaxLabel = s.Labels[i]
		}
	}
	return sum
}
