// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts_test

import (
	"fmt"
	"strings"

	"golang.org/x/exp/sortbench/sorts"
)

func ExampleQuickSort() {
	s := []int{5, 3, 1, 4, 2}
	sorts.QuickSort(s)
	fmt.Println(s)
	// Output: [1 2 3 4 5]
}

func ExampleMergeSortMove() {
	s := []string{"pear", "apple", "fig"}
	s = sorts.MergeSortMove(s)
	fmt.Println(s)
	// Output: [apple fig pear]
}

func ExampleMergeSortCloneFunc() {
	type doc struct{ words []string }
	docs := []doc{
		{strings.Fields("b c")},
		{strings.Fields("a")},
	}
	sorts.MergeSortCloneFunc(docs,
		func(a, b doc) bool { return a.words[0] < b.words[0] },
		func(d doc) doc { return doc{append([]string(nil), d.words...)} },
	)
	fmt.Println(docs)
	// Output: [{[a]} {[b c]}]
}

func ExampleMergeSortBuffer() {
	s := make([]int, 40)
	for i := range s {
		s[i] = 40 - i
	}
	sorts.MergeSortBuffer(s)
	fmt.Println(s[:5], s[35:])
	// Output: [1 2 3 4 5] [36 37 38 39 40]
}
