// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/sortbench/sorts"
	"golang.org/x/xerrors"
)

// Algorithm names.
const (
	Bubble      = "bubble"
	Selection   = "selection"
	Insertion   = "insertion"
	MergeMove   = "merge-move"
	MergeClone  = "merge-clone"
	MergeBuffer = "merge-buffer"
	Quick       = "quick"

	// Builtin is the name under which the oracle is reported.
	Builtin = "builtin"
)

// Names lists the algorithm names in the order Algorithms returns them.
var Names = []string{Bubble, Selection, Insertion, MergeMove, MergeClone, MergeBuffer, Quick}

// An Algorithm is a named sort. Exactly one of InPlace and Move is set.
type Algorithm[E constraints.Ordered] struct {
	Name    string
	InPlace func([]E)
	Move    func([]E) []E
}

// Algorithms returns every sort in package sorts. MergeBuffer takes its
// scratch buffers from alloc, or from the heap if alloc is nil.
func Algorithms[E constraints.Ordered](alloc sorts.Allocator[E]) []Algorithm[E] {
	return []Algorithm[E]{
		{Name: Bubble, InPlace: sorts.BubbleSort[[]E, E]},
		{Name: Selection, InPlace: sorts.SelectionSort[[]E, E]},
		{Name: Insertion, InPlace: sorts.InsertionSort[[]E, E]},
		{Name: MergeMove, Move: sorts.MergeSortMove[[]E, E]},
		{Name: MergeClone, InPlace: sorts.MergeSortClone[[]E, E]},
		{Name: MergeBuffer, InPlace: func(x []E) { sorts.MergeSortBufferWith(x, alloc) }},
		{Name: Quick, InPlace: sorts.QuickSort[[]E, E]},
	}
}

// oracle is the reference every algorithm is checked against.
func oracle[E constraints.Ordered]() Algorithm[E] {
	return Algorithm[E]{Name: Builtin, InPlace: slices.Sort[[]E, E]}
}

// Select returns the algorithms of algs named in names, in the order of
// names. An empty names selects all of algs.
func Select[E constraints.Ordered](algs []Algorithm[E], names []string) ([]Algorithm[E], error) {
	if len(names) == 0 {
		return algs, nil
	}
	var sel []Algorithm[E]
	for _, name := range names {
		i := slices.IndexFunc(algs, func(a Algorithm[E]) bool { return a.Name == name })
		if i < 0 {
			return nil, xerrors.Errorf("bench: unknown algorithm %q", name)
		}
		sel = append(sel, algs[i])
	}
	return sel, nil
}
