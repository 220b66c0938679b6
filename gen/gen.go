// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen generates integer sequences for sorting benchmarks.
package gen

import (
	"math"
	"math/rand"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

// Random returns n values drawn uniformly from [0, bound).
// Random panics if bound is not positive or exceeds math.MaxInt64.
func Random[E constraints.Integer](r *rand.Rand, n int, bound E) []E {
	s := make([]E, n)
	fillRandom(r, s, bound)
	return s
}

func fillRandom[E constraints.Integer](r *rand.Rand, s []E, bound E) {
	if bound <= 0 {
		panic("gen: non-positive bound")
	}
	if uint64(bound) > math.MaxInt64 {
		panic("gen: bound exceeds MaxInt64")
	}
	for i := range s {
		s[i] = E(r.Int63n(int64(bound)))
	}
}

// Sorted returns 0, 1, ..., n-1.
func Sorted[E constraints.Integer](n int) []E {
	s := make([]E, n)
	fillSorted(s)
	return s
}

func fillSorted[E constraints.Integer](s []E) {
	for i := range s {
		s[i] = E(i)
	}
}

// Reversed returns n, n-1, ..., 1.
func Reversed[E constraints.Integer](n int) []E {
	s := make([]E, n)
	fillReversed(s)
	return s
}

func fillReversed[E constraints.Integer](s []E) {
	n := len(s)
	for i := range s {
		s[i] = E(n - i)
	}
}

// Mixed returns n values whose first third is sorted, middle third is
// random in [0, bound) and last third is reversed.
func Mixed[E constraints.Integer](r *rand.Rand, n int, bound E) []E {
	s := make([]E, n)
	m := n / 3
	fillSorted(s[:m])
	fillRandom(r, s[m:n-m], bound)
	fillReversed(s[n-m:])
	return s
}

// A Shape names an input distribution.
type Shape string

const (
	ShapeRandom   Shape = "random"
	ShapeSorted   Shape = "sorted"
	ShapeReversed Shape = "reversed"
	ShapeMixed    Shape = "mixed"
)

// Shapes lists every known Shape.
var Shapes = []Shape{ShapeRandom, ShapeSorted, ShapeReversed, ShapeMixed}

// ParseShape returns the Shape named s, ignoring case.
func ParseShape(s string) (Shape, error) {
	for _, sh := range Shapes {
		if strings.EqualFold(s, string(sh)) {
			return sh, nil
		}
	}
	return "", xerrors.Errorf("gen: unknown shape %q", s)
}

// Batch returns count sequences of n values of the given shape.
// Random values are drawn from [0, bound).
func Batch[E constraints.Integer](r *rand.Rand, shape Shape, count, n int, bound E) [][]E {
	b := make([][]E, count)
	for i := range b {
		switch shape {
		case ShapeSorted:
			b[i] = Sorted[E](n)
		case ShapeReversed:
			b[i] = Reversed[E](n)
		case ShapeMixed:
			b[i] = Mixed(r, n, bound)
		default:
			b[i] = Random(r, n, bound)
		}
	}
	return b
}

// CloneBatch returns a deep copy of b: sorting the copy leaves b unchanged.
func CloneBatch[E any](b [][]E) [][]E {
	c := make([][]E, len(b))
	for i, s := range b {
		c[i] = slices.Clone(s)
	}
	return c
}
