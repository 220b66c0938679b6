// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

// An Allocator supplies the scratch buffers used by MergeSortBufferFunc.
//
// Alloc returns a slice of length n. Every slice returned by Alloc is
// passed to Free exactly once, and slices are freed in the reverse order
// of their allocation. Alloc panics if it cannot satisfy the request.
type Allocator[E any] interface {
	Alloc(n int) []E
	Free(buf []E)
}

// HeapAllocator is an Allocator backed by the Go heap.
type HeapAllocator[E any] struct{}

// Alloc returns a new zeroed slice of length n.
func (HeapAllocator[E]) Alloc(n int) []E { return make([]E, n) }

// Free zeroes buf so that it keeps nothing reachable.
func (HeapAllocator[E]) Free(buf []E) { clear(buf) }

// withScratch calls f with a buffer of length n taken from a and
// releases the buffer when f returns or panics.
func withScratch[E any](a Allocator[E], n int, f func(buf []E)) {
	buf := a.Alloc(n)
	defer a.Free(buf)
	f(buf)
}
