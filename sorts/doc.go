// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sorts provides textbook comparison sorts over generic slices.
//
// Each algorithm comes in two forms. The plain form, such as QuickSort,
// sorts any slice whose elements satisfy constraints.Ordered. The Func
// form, such as QuickSortFunc, takes a less function and accepts any
// element type; less must describe a strict weak ordering.
//
// None of the sorts are stable, and none of them guard against
// adversarial input: QuickSort always picks the first element as its
// pivot and degrades to quadratic time on sorted data.
//
// The three merge sorts differ only in how elements travel between the
// slice and temporary storage:
//
//   - MergeSortMove takes ownership of its argument and returns a new
//     slice. Elements are relocated and never cloned.
//   - MergeSortClone sorts in place and clones elements into a scratch
//     slice at every merge.
//   - MergeSortBuffer sorts in place and relocates elements with copy
//     into a scratch buffer obtained from an Allocator.
package sorts
