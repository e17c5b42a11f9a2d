// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbench

import "fmt"

// timeUnits maps Google Benchmark's time_unit values to nanoseconds.
var timeUnits = map[string]float64{
	"":   1,
	"ns": 1,
	"us": 1e3,
	"ms": 1e6,
	"s":  1e9,
}

// ParseTimeUnit returns the number of nanoseconds in one unit of a
// Google Benchmark time_unit. The empty unit is nanoseconds, which
// is what Google Benchmark uses when no unit is set.
func ParseTimeUnit(unit string) (float64, error) {
	f, ok := timeUnits[unit]
	if !ok {
		return 0, fmt.Errorf("unknown time_unit %q", unit)
	}
	return f, nil
}
