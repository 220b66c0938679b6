// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

import "golang.org/x/exp/constraints"

// Ranges shorter than this are insertion sorted by MergeSortBuffer.
const bufferInsertionCutoff = 32

// MergeSortBuffer sorts x in ascending order using heap-allocated
// scratch buffers. See MergeSortBufferFunc.
func MergeSortBuffer[S ~[]E, E constraints.Ordered](x S) {
	MergeSortBufferFunc(x, cmpLess[E], nil)
}

// MergeSortBufferWith is like MergeSortBuffer but takes its scratch
// buffers from alloc.
func MergeSortBufferWith[S ~[]E, E constraints.Ordered](x S, alloc Allocator[E]) {
	MergeSortBufferFunc(x, cmpLess[E], alloc)
}

// MergeSortBufferFunc sorts x in ascending order as determined by less.
//
// Each merge step takes one buffer of exactly the merged length from
// alloc, relocates the two sorted halves into it with plain copies and
// copies the result back. Elements are never cloned. Both halves are
// sorted before the parent allocates, so at most one buffer is live at a
// time and buffers are released in the reverse order of allocation.
// A nil alloc means HeapAllocator.
func MergeSortBufferFunc[S ~[]E, E any](x S, less func(a, b E) bool, alloc Allocator[E]) {
	if alloc == nil {
		alloc = HeapAllocator[E]{}
	}
	mergeSortBuffer([]E(x), less, alloc)
}

func mergeSortBuffer[E any](x []E, less func(a, b E) bool, alloc Allocator[E]) {
	if len(x) < 2 {
		return
	}
	if len(x) < bufferInsertionCutoff {
		InsertionSortFunc(x, less)
		return
	}

	mid := len(x) / 2
	mergeSortBuffer(x[:mid], less, alloc)
	mergeSortBuffer(x[mid:], less, alloc)

	withScratch(alloc, len(x), func(buf []E) {
		n, l, r := 0, 0, mid
		for l < mid && r < len(x) {
			if less(x[l], x[r]) {
				buf[n] = x[l]
				l++
			} else {
				buf[n] = x[r]
				r++
			}
			n++
		}
		n += copy(buf[n:], x[l:mid])
		copy(buf[n:], x[r:])
		copy(x, buf)
	})
}
