// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/sortbench/sorts"
)

func TestTimeInPlace(t *testing.T) {
	batch := [][]int{{3, 1, 2}, {9, 8, 7, 6}, {}}
	calls := 0
	d := TimeInPlace(batch, func(s []int) {
		calls++
		slices.Sort(s)
	})
	if calls != 3 {
		t.Errorf("sort called %d times, want 3", calls)
	}
	if d < 0 {
		t.Errorf("negative duration %v", d)
	}
	want := [][]int{{1, 2, 3}, {6, 7, 8, 9}, {}}
	if diff := cmp.Diff(want, batch); diff != "" {
		t.Errorf("batch not sorted in place (-want +got):\n%s", diff)
	}
}

func TestMeasureInPlaceSamples(t *testing.T) {
	batch := [][]int{{2, 1}, {4, 3}, {6, 5}, {8, 7}}
	tm := MeasureInPlace(batch, sorts.QuickSort[[]int, int])
	if len(tm.Samples) != len(batch) {
		t.Fatalf("got %d samples, want %d", len(tm.Samples), len(batch))
	}
	if s := tm.Summary(); s.N != len(batch) || s.Max < s.Min {
		t.Errorf("bad summary %+v", s)
	}
}

func TestTimeMove(t *testing.T) {
	batch := [][]int{{5, 3, 1, 4, 2}, {2, 2, 1}}
	sorted, d := TimeMove(batch, sorts.MergeSortMove[[]int, int])
	if d < 0 {
		t.Errorf("negative duration %v", d)
	}
	want := [][]int{{1, 2, 3, 4, 5}, {1, 2, 2}}
	if diff := cmp.Diff(want, sorted); diff != "" {
		t.Errorf("TimeMove result (-want +got):\n%s", diff)
	}
	for i, s := range batch {
		if s != nil {
			t.Errorf("input sequence %d not consumed: %v", i, s)
		}
	}
}

func TestEmptyBatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("TimeInPlace with an empty batch did not panic")
		}
	}()
	TimeInPlace(nil, func([]int) {})
}
