// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func ms(vals ...int) []time.Duration {
	d := make([]time.Duration, len(vals))
	for i, v := range vals {
		d[i] = time.Duration(v) * time.Millisecond
	}
	return d
}

func TestMeanAndStdDev(t *testing.T) {
	tests := []struct {
		name         string
		data         []time.Duration
		mean, stddev time.Duration
	}{
		{"single value", ms(20), 20 * time.Millisecond, 0},
		{"constant", ms(5, 5, 5, 5), 5 * time.Millisecond, 0},
		{"low count", ms(1, 2, 3, 4, 5), 3 * time.Millisecond, 1581139 * time.Nanosecond},
		{"two values", []time.Duration{10, 20}, 15, 7},
	}
	for _, tt := range tests {
		mean, stddev := MeanAndStdDev(tt.data)
		if mean != tt.mean || stddev != tt.stddev {
			t.Errorf("%s: MeanAndStdDev = %v, %v; want %v, %v", tt.name, mean, stddev, tt.mean, tt.stddev)
		}
	}
}

func TestQuantiles(t *testing.T) {
	tests := []struct {
		name      string
		data      []time.Duration
		quantiles []float64
		want      []time.Duration
	}{
		{"single", ms(7), []float64{0, 0.5, 1}, ms(7, 7, 7)},
		{"odd", ms(5, 1, 3), []float64{0, 0.5, 1}, ms(1, 3, 5)},
		{"even interpolates", ms(1, 2, 3, 4), []float64{0.5}, []time.Duration{2500 * time.Microsecond}},
		{"p90", ms(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11), []float64{0.9}, ms(10)},
		{"no quantiles", ms(1), nil, []time.Duration{}},
	}
	for _, tt := range tests {
		got := Quantiles(tt.data, tt.quantiles...)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: Quantiles mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestQuantilesDoesNotModify(t *testing.T) {
	data := ms(3, 1, 2)
	orig := slices.Clone(data)
	Quantiles(data, 0.5)
	if !slices.Equal(data, orig) {
		t.Errorf("Quantiles reordered its input: %v", data)
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(ms(4, 1, 3, 2, 5))
	want := Summary{
		N:      5,
		Mean:   3 * time.Millisecond,
		StdDev: 1581139 * time.Nanosecond,
		Min:    1 * time.Millisecond,
		Max:    5 * time.Millisecond,
		Median: 3 * time.Millisecond,
		P90:    4600 * time.Microsecond,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestPanics(t *testing.T) {
	for name, f := range map[string]func(){
		"empty mean":      func() { MeanAndStdDev(nil) },
		"empty quantiles": func() { Quantiles(nil, 0.5) },
		"bad quantile":    func() { Quantiles(ms(1), 1.5) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: did not panic", name)
				}
			}()
			f()
		}()
	}
}
