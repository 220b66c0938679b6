// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type box struct{ v int }

func boxes(vals ...int) []*box {
	s := make([]*box, len(vals))
	for i, v := range vals {
		s[i] = &box{v}
	}
	return s
}

func lessBox(a, b *box) bool { return a.v < b.v }

func TestMergeSortMoveRelocates(t *testing.T) {
	in := boxes(9, 4, 7, 1, 8, 2, 2, 6, 3, 5)
	orig := slices.Clone(in)

	got := MergeSortMoveFunc(in, lessBox)

	for i := 1; i < len(got); i++ {
		if got[i].v < got[i-1].v {
			t.Fatalf("result not sorted at %d: %d > %d", i, got[i-1].v, got[i].v)
		}
	}
	// Every original pointer must appear exactly once: nothing was cloned.
	seen := make(map[*box]int)
	for _, b := range got {
		seen[b]++
	}
	for _, b := range orig {
		if seen[b] != 1 {
			t.Errorf("element %p (%d) appears %d times in result, want 1", b, b.v, seen[b])
		}
	}
	// The consumed input no longer references any element.
	for i, b := range in {
		if b != nil {
			t.Errorf("input slot %d still holds %d after the move", i, b.v)
		}
	}
}

func TestMergeSortMoveShort(t *testing.T) {
	in := []int{4}
	got := MergeSortMove(in)
	if &got[0] != &in[0] {
		t.Errorf("single element input was not returned as is")
	}
	if got := MergeSortMove([]int(nil)); got != nil {
		t.Errorf("MergeSortMove(nil) = %v, want nil", got)
	}
}

func TestMergeSortCloneClones(t *testing.T) {
	in := boxes(5, 3, 1, 4, 2)
	clones := 0
	clone := func(b *box) *box {
		clones++
		c := *b
		return &c
	}
	MergeSortCloneFunc(in, lessBox, clone)

	var got []int
	for _, b := range in {
		got = append(got, b.v)
	}
	if want := []int{1, 2, 3, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// The final merge of 5 sits on merges of 2 and 3; the 3 sits on a merge of 2.
	if want := 2 + 2 + 3 + 5; clones != want {
		t.Errorf("clone called %d times, want %d", clones, want)
	}
}

// countingAllocator checks that scratch buffers are released exactly once
// and in stack order.
type countingAllocator[E any] struct {
	t       *testing.T
	allocs  int
	frees   int
	live    [][]E
	maxLive int
	sizes   []int
}

func (a *countingAllocator[E]) Alloc(n int) []E {
	a.allocs++
	a.sizes = append(a.sizes, n)
	buf := make([]E, n)
	a.live = append(a.live, buf)
	a.maxLive = max(a.maxLive, len(a.live))
	return buf
}

func (a *countingAllocator[E]) Free(buf []E) {
	a.frees++
	if len(a.live) == 0 {
		a.t.Errorf("Free called with no live buffers")
		return
	}
	top := a.live[len(a.live)-1]
	if len(top) != len(buf) || (len(buf) > 0 && &top[0] != &buf[0]) {
		a.t.Errorf("Free out of order: got buffer of %d, want buffer of %d", len(buf), len(top))
	}
	a.live = a.live[:len(a.live)-1]
}

func TestMergeSortBufferLifetime(t *testing.T) {
	for _, n := range []int{0, 1, 31, 32, 40, 64, 100, 1000, 4097} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			data := rand.New(rand.NewSource(int64(n))).Perm(n)
			a := &countingAllocator[int]{t: t}
			MergeSortBufferFunc(data, cmpLess[int], Allocator[int](a))

			if !slices.IsSorted(data) {
				t.Errorf("result not sorted: %v", data)
			}
			if a.allocs != a.frees {
				t.Errorf("%d allocations, %d releases", a.allocs, a.frees)
			}
			if len(a.live) != 0 {
				t.Errorf("%d buffers still live after sort", len(a.live))
			}
			if n < bufferInsertionCutoff && a.allocs != 0 {
				t.Errorf("%d allocations for %d elements, want none below the cutoff", a.allocs, n)
			}
			if n >= bufferInsertionCutoff {
				if a.allocs == 0 {
					t.Errorf("no allocations for %d elements", n)
				}
				if a.maxLive != 1 {
					t.Errorf("%d buffers live at once, want 1", a.maxLive)
				}
				if last := a.sizes[len(a.sizes)-1]; last != n {
					t.Errorf("final merge used a buffer of %d, want %d", last, n)
				}
			}
		})
	}
}

func TestMergeSortBufferWith(t *testing.T) {
	data := []string{"kiwi", "fig", "apple", "date", "cherry", "banana"}
	for len(data) < 3*bufferInsertionCutoff {
		data = append(data, fmt.Sprint(len(data)*7%23))
	}
	want := slices.Clone(data)
	slices.Sort(want)

	a := &countingAllocator[string]{t: t}
	MergeSortBufferWith(data, Allocator[string](a))
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if a.allocs == 0 || a.allocs != a.frees {
		t.Errorf("%d allocations, %d releases; want equal and non-zero", a.allocs, a.frees)
	}
}

func TestMergeSortBufferReleasesOnPanic(t *testing.T) {
	data := descending(64)
	a := &countingAllocator[int]{t: t}
	calls := 0
	less := func(x, y int) bool {
		calls++
		// Each reversed half of 32 takes 2*120 comparisons to insertion
		// sort its quarters and 16 to merge them, 512 in all. The final
		// merge takes 32 more.
		if calls > 520 {
			panic("comparison failed")
		}
		return x < y
	}
	defer func() {
		if recover() == nil {
			t.Fatal("sort completed without reaching the failing comparison")
		}
		if a.allocs == 0 {
			t.Fatal("panic happened before any buffer was allocated")
		}
		if a.allocs != a.frees {
			t.Errorf("%d allocations, %d releases after panic", a.allocs, a.frees)
		}
	}()
	MergeSortBufferFunc(data, less, Allocator[int](a))
}
