// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"time"

	"golang.org/x/exp/sortbench/stats"
)

// A Timing is the outcome of sorting one batch.
type Timing struct {
	// Mean is the total elapsed time divided by the number of sequences.
	Mean time.Duration
	// Samples holds the duration of each call, in batch order.
	Samples []time.Duration
}

// Summary summarizes the per-call samples.
func (t Timing) Summary() stats.Summary {
	return stats.Summarize(t.Samples)
}

// TimeInPlace sorts every sequence of batch in place, one after the
// other, and returns the mean duration of a call.
// It panics if batch is empty.
func TimeInPlace[E any](batch [][]E, sort func([]E)) time.Duration {
	return MeasureInPlace(batch, sort).Mean
}

// MeasureInPlace is like TimeInPlace but also records each call.
func MeasureInPlace[E any](batch [][]E, sort func([]E)) Timing {
	checkBatch(batch)
	samples := make([]time.Duration, len(batch))
	start := time.Now()
	for i, s := range batch {
		t0 := time.Now()
		sort(s)
		samples[i] = time.Since(t0)
	}
	return Timing{
		Mean:    time.Since(start) / time.Duration(len(batch)),
		Samples: samples,
	}
}

// TimeMove passes every sequence of batch to sort, one after the other,
// and returns the results together with the mean duration of a call.
//
// TimeMove consumes batch: each entry is handed to sort and then set to
// nil. It panics if batch is empty.
func TimeMove[E any](batch [][]E, sort func([]E) []E) ([][]E, time.Duration) {
	sorted, t := MeasureMove(batch, sort)
	return sorted, t.Mean
}

// MeasureMove is like TimeMove but also records each call.
func MeasureMove[E any](batch [][]E, sort func([]E) []E) ([][]E, Timing) {
	checkBatch(batch)
	sorted := make([][]E, len(batch))
	samples := make([]time.Duration, len(batch))
	start := time.Now()
	for i, s := range batch {
		batch[i] = nil
		t0 := time.Now()
		sorted[i] = sort(s)
		samples[i] = time.Since(t0)
	}
	return sorted, Timing{
		Mean:    time.Since(start) / time.Duration(len(batch)),
		Samples: samples,
	}
}

func checkBatch[E any](batch [][]E) {
	if len(batch) == 0 {
		panic("bench: empty batch")
	}
}
