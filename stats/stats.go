// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats summarizes timing samples.
//
// All functions accept their samples in any order and do not modify
// them.
package stats

// References:
//
// Hyndman, Rob J.; Fan, Yanan (November 1996).
// "Sample Quantiles in Statistical Packages".
// American Statistician. 50 (4).
// American Statistical Association: 361–365.
// doi:10.2307/2684934. JSTOR 2684934.

import (
	"math"
	"slices"
	"time"
)

// A Summary describes a set of duration samples.
type Summary struct {
	N            int
	Mean, StdDev time.Duration
	Min, Max     time.Duration
	Median, P90  time.Duration
}

// Summarize returns the Summary of samples.
// It panics if samples is empty.
func Summarize(samples []time.Duration) Summary {
	mean, stddev := MeanAndStdDev(samples)
	q := Quantiles(samples, 0, 0.5, 0.9, 1)
	return Summary{
		N:      len(samples),
		Mean:   mean,
		StdDev: stddev,
		Min:    q[0],
		Median: q[1],
		P90:    q[2],
		Max:    q[3],
	}
}

// MeanAndStdDev returns the arithmetic mean and sample standard
// deviation of samples. The standard deviation of a single sample is 0.
//
// MeanAndStdDev panics if samples is empty.
func MeanAndStdDev(samples []time.Duration) (mean, stddev time.Duration) {
	if len(samples) == 0 {
		panic("stats: empty sample")
	}
	sum := 0.0
	for _, d := range samples {
		sum += float64(d)
	}
	m := sum / float64(len(samples))
	if len(samples) == 1 {
		return round(m), 0
	}
	squaredDiffs := 0.0
	for _, d := range samples {
		diff := float64(d) - m
		squaredDiffs += diff * diff
	}
	return round(m), round(math.Sqrt(squaredDiffs / float64(len(samples)-1)))
}

// Quantiles returns the requested quantiles of samples, one for each
// element of quantiles. Quantile 0 is the minimum, 0.5 the median and
// 1 the maximum.
//
// Quantiles panics if samples is empty or a quantile lies outside [0, 1].
func Quantiles(samples []time.Duration, quantiles ...float64) []time.Duration {
	if len(samples) == 0 {
		panic("stats: empty sample")
	}
	if !slices.IsSorted(samples) {
		samples = slices.Clone(samples)
		slices.Sort(samples)
	}
	res := make([]time.Duration, len(quantiles))
	for i, q := range quantiles {
		if !(0 <= q && q <= 1) {
			panic("stats: quantile must be contained in the interval [0, 1]")
		}
		// The "inclusive" method, Q7 in Hyndman and Fan, also known as
		// "linear" or "R-7".
		res[i] = round(hyndmanFanR7(samples, q))
	}
	return res
}

// hyndmanFanR7 interpolates the q-th quantile of sorted.
func hyndmanFanR7(sorted []time.Duration, q float64) float64 {
	h := float64(len(sorted)-1)*q + 1
	lo, hi := float64(sorted[floor(h-1)]), float64(sorted[ceil(h-1)])
	return lo + (h-math.Floor(h))*(hi-lo)
}

func ceil(n float64) int { return int(math.Ceil(n)) }

func floor(n float64) int { return int(math.Floor(n)) }

func round(ns float64) time.Duration { return time.Duration(math.Round(ns)) }
