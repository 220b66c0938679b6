// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

import "golang.org/x/exp/constraints"

func cmpLess[E constraints.Ordered](a, b E) bool {
	return a < b
}

// BubbleSort sorts x in ascending order.
func BubbleSort[S ~[]E, E constraints.Ordered](x S) {
	BubbleSortFunc(x, cmpLess[E])
}

// BubbleSortFunc sorts x in ascending order as determined by less.
//
// Pass i moves the i-th largest element to its final place at the tail.
// All len(x) passes are made even if the slice becomes sorted earlier.
func BubbleSortFunc[S ~[]E, E any](x S, less func(a, b E) bool) {
	n := len(x)
	for i := 1; i <= n; i++ {
		for j := 0; j < n-i; j++ {
			if less(x[j+1], x[j]) {
				x[j], x[j+1] = x[j+1], x[j]
			}
		}
	}
}

// SelectionSort sorts x in ascending order.
func SelectionSort[S ~[]E, E constraints.Ordered](x S) {
	SelectionSortFunc(x, cmpLess[E])
}

// SelectionSortFunc sorts x in ascending order as determined by less.
// It makes at most len(x) swaps.
func SelectionSortFunc[S ~[]E, E any](x S, less func(a, b E) bool) {
	for i := range x {
		sel := i
		for j := i + 1; j < len(x); j++ {
			if less(x[j], x[sel]) {
				sel = j
			}
		}
		x[i], x[sel] = x[sel], x[i]
	}
}

// InsertionSort sorts x in ascending order.
// It runs in linear time on input that is already sorted.
func InsertionSort[S ~[]E, E constraints.Ordered](x S) {
	InsertionSortFunc(x, cmpLess[E])
}

// InsertionSortFunc sorts x in ascending order as determined by less.
func InsertionSortFunc[S ~[]E, E any](x S, less func(a, b E) bool) {
	for i := 1; i < len(x); i++ {
		for j := i; j > 0 && less(x[j], x[j-1]); j-- {
			x[j], x[j-1] = x[j-1], x[j]
		}
	}
}
