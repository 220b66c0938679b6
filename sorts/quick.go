// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

import "golang.org/x/exp/constraints"

// QuickSort sorts x in ascending order.
//
// The pivot is always the first element, so already sorted or reverse
// sorted input takes quadratic time and recursion depth linear in len(x).
func QuickSort[S ~[]E, E constraints.Ordered](x S) {
	QuickSortFunc(x, cmpLess[E])
}

// QuickSortFunc sorts x in ascending order as determined by less.
func QuickSortFunc[S ~[]E, E any](x S, less func(a, b E) bool) {
	switch n := len(x); {
	case n < 2:
		return
	case n == 2:
		if less(x[1], x[0]) {
			x[0], x[1] = x[1], x[0]
		}
		return
	}

	// Lomuto partition around x[0]: x[1:p+1] holds the elements less
	// than the pivot once the scan completes.
	p := 0
	for i := 1; i < len(x); i++ {
		if less(x[i], x[0]) {
			p++
			x[p], x[i] = x[i], x[p]
		}
	}
	x[0], x[p] = x[p], x[0]

	QuickSortFunc(x[:p], less)
	QuickSortFunc(x[p+1:], less)
}
