// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timefmt formats nanosecond durations for humans.
package timefmt

import "strconv"

// A Scaler formats nanosecond values in a fixed unit and precision.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Nanoseconds in one Unit
	Unit   string  // "ns", "µs", "ms" or "s"
}

// Format formats ns in s's unit, e.g. "1.234µs".
func (s Scaler) Format(ns float64) string {
	buf := make([]byte, 0, 16)
	buf = strconv.AppendFloat(buf, ns/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Unit...)
	return string(buf)
}

type unit struct {
	factor float64
	name   string
}

// Largest first.
var units = []unit{
	{1e9, "s"},
	{1e6, "ms"},
	{1e3, "µs"},
	{1, "ns"},
}

// Format formats ns in the largest unit that keeps the value at or
// above 1. Values of 1ns or more get at least four significant digits;
// smaller ones get three decimal places.
func Format(ns float64) string {
	return CommonScale([]float64{ns}).Format(ns)
}

// CommonScale returns a Scaler to apply to all of vals, such as a
// table column. The scale is picked from the non-zero value closest
// to zero, so every value of 1ns or more keeps at least four
// significant digits.
func CommonScale(vals []float64) Scaler {
	var min float64
	for _, v := range vals {
		if v < 0 {
			v = -v
		}
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, "ns"}
	}

	// The thresholds sit just below the rounding boundaries so that,
	// say, 999.96ns prints as 1.000µs and not 1000.0ns.
	for _, u := range units {
		if min < u.factor*0.99995 && u.factor != 1 {
			continue
		}
		v := min / u.factor
		switch {
		case v >= 99.995:
			return Scaler{1, u.factor, u.name}
		case v >= 9.9995:
			return Scaler{2, u.factor, u.name}
		}
		return Scaler{3, u.factor, u.name}
	}
	panic("not reachable")
}
