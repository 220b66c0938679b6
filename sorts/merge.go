// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// MergeSortMove returns the elements of x in ascending order.
// See MergeSortMoveFunc.
func MergeSortMove[S ~[]E, E constraints.Ordered](x S) S {
	return MergeSortMoveFunc(x, cmpLess[E])
}

// MergeSortMoveFunc returns the elements of x in ascending order as
// determined by less.
//
// MergeSortMoveFunc takes ownership of x. Elements are moved out of x,
// never cloned, and every slot they leave behind is reset to the zero
// value. The caller must not use x after the call; for inputs shorter
// than two elements the result is x itself.
func MergeSortMoveFunc[S ~[]E, E any](x S, less func(a, b E) bool) S {
	if len(x) < 2 {
		return x
	}

	left, right := splitOff(x, len(x)/2)
	right = MergeSortMoveFunc(right, less)
	left = MergeSortMoveFunc(left, less)

	// Merge from the back: removing the last element of a slice is
	// constant time, removing the first is not.
	result := make(S, 0, len(left)+len(right))
	for len(left) > 0 && len(right) > 0 {
		if less(right[len(right)-1], left[len(left)-1]) {
			result = append(result, pop(&left))
		} else {
			result = append(result, pop(&right))
		}
	}
	for len(left) > 0 {
		result = append(result, pop(&left))
	}
	for len(right) > 0 {
		result = append(result, pop(&right))
	}
	slices.Reverse(result)
	return result
}

// splitOff moves x[at:] into a newly allocated slice and returns the
// truncated x along with it.
func splitOff[S ~[]E, E any](x S, at int) (head, tail S) {
	tail = make(S, len(x)-at)
	copy(tail, x[at:])
	clear(x[at:])
	return x[:at], tail
}

// pop removes and returns the last element of *s.
func pop[S ~[]E, E any](s *S) E {
	x := *s
	n := len(x) - 1
	e := x[n]
	var zero E
	x[n] = zero
	*s = x[:n]
	return e
}

// MergeSortClone sorts x in ascending order.
// Elements are duplicated by assignment.
func MergeSortClone[S ~[]E, E constraints.Ordered](x S) {
	MergeSortCloneFunc(x, cmpLess[E], func(e E) E { return e })
}

// MergeSortCloneFunc sorts x in ascending order as determined by less.
//
// Every merge clones the elements of the merged range into a scratch
// slice with clone and then copies the scratch slice back over x, so
// each element is cloned once per level of recursion.
func MergeSortCloneFunc[S ~[]E, E any](x S, less func(a, b E) bool, clone func(E) E) {
	if len(x) < 2 {
		return
	}

	mid := len(x) / 2
	MergeSortCloneFunc(x[:mid], less, clone)
	MergeSortCloneFunc(x[mid:], less, clone)

	tmp := make([]E, 0, len(x))
	l, r := 0, mid
	for l < mid && r < len(x) {
		if less(x[r], x[l]) {
			tmp = append(tmp, clone(x[r]))
			r++
		} else {
			tmp = append(tmp, clone(x[l]))
			l++
		}
	}
	for _, e := range x[l:mid] {
		tmp = append(tmp, clone(e))
	}
	for _, e := range x[r:] {
		tmp = append(tmp, clone(e))
	}
	copy(x, tmp)
}
