// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rawbuf provides scratch memory for fixed-size numeric values
// that lives outside the Go heap.
//
// An Arena hands out buffers from one anonymous memory mapping in stack
// order. It satisfies sorts.Allocator, so MergeSortBufferFunc can merge
// through it without creating garbage. Because the garbage collector
// does not scan the mapping, only pointer-free element types are
// allowed.
package rawbuf

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Fixed is the set of element types an Arena can hold.
type Fixed interface {
	constraints.Integer | constraints.Float
}

// An Arena is a bump allocator over a mapped region.
//
// Buffers must be freed in the reverse order of their allocation.
// An Arena is not safe for concurrent use.
type Arena[E Fixed] struct {
	mem   []byte
	elems []E
	top   int   // elements in use
	live  []int // start offset of each live buffer

	allocs, frees int
	highWater     int
}

// Stats describes the use of an Arena since it was created.
type Stats struct {
	Allocs, Frees int
	Live          int // buffers not yet freed
	Capacity      int // elements
	HighWater     int // most elements in use at once
	ElemSize      int // bytes
}

// HighWaterBytes returns the peak number of bytes in use.
func (s Stats) HighWaterBytes() uint64 {
	return uint64(s.HighWater) * uint64(s.ElemSize)
}

// New returns an Arena with room for capacity elements.
func New[E Fixed](capacity int) (*Arena[E], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("rawbuf: negative capacity %d", capacity)
	}
	a := &Arena[E]{}
	if err := a.remap(capacity); err != nil {
		return nil, err
	}
	return a, nil
}

func elemSize[E Fixed]() int {
	var zero E
	return int(unsafe.Sizeof(zero))
}

// remap replaces the region with one holding n elements.
// It must only be called while no buffers are live.
func (a *Arena[E]) remap(n int) error {
	if a.mem != nil {
		if err := unmapRegion(a.mem); err != nil {
			return fmt.Errorf("rawbuf: unmapping %d bytes: %w", len(a.mem), err)
		}
		a.mem, a.elems = nil, nil
	}
	if n == 0 {
		return nil
	}
	size := n * elemSize[E]()
	mem, err := mapRegion(size)
	if err != nil {
		return fmt.Errorf("rawbuf: mapping %d bytes: %w", size, err)
	}
	a.mem = mem
	a.elems = unsafe.Slice((*E)(unsafe.Pointer(&mem[0])), n)
	return nil
}

// Alloc returns a buffer of n elements with unspecified contents.
//
// If the arena is empty and too small it is remapped with at least
// twice its capacity. Alloc panics if it cannot map memory or if the
// request does not fit next to buffers that are still live.
func (a *Arena[E]) Alloc(n int) []E {
	if a.top+n > len(a.elems) {
		if len(a.live) > 0 {
			panic(fmt.Sprintf("rawbuf: arena exhausted: %d of %d elements live, %d requested", a.top, len(a.elems), n))
		}
		if err := a.remap(max(n, 2*len(a.elems))); err != nil {
			panic(err)
		}
	}
	buf := a.elems[a.top : a.top+n : a.top+n]
	a.live = append(a.live, a.top)
	a.top += n
	a.allocs++
	a.highWater = max(a.highWater, a.top)
	return buf
}

// Free releases buf, which must be the most recently allocated live
// buffer. It panics otherwise.
func (a *Arena[E]) Free(buf []E) {
	if len(a.live) == 0 {
		panic("rawbuf: Free called with no live buffers")
	}
	off := a.live[len(a.live)-1]
	if len(buf) != a.top-off || (len(buf) > 0 && &buf[0] != &a.elems[off]) {
		panic("rawbuf: Free called out of allocation order")
	}
	a.live = a.live[:len(a.live)-1]
	a.top = off
	a.frees++
}

// Stats reports allocation counts and sizes.
func (a *Arena[E]) Stats() Stats {
	return Stats{
		Allocs:    a.allocs,
		Frees:     a.frees,
		Live:      len(a.live),
		Capacity:  len(a.elems),
		HighWater: a.highWater,
		ElemSize:  elemSize[E](),
	}
}

// Close unmaps the arena. It fails if any buffer is still live.
func (a *Arena[E]) Close() error {
	if len(a.live) > 0 {
		return fmt.Errorf("rawbuf: Close with %d live buffers", len(a.live))
	}
	return a.remap(0)
}
