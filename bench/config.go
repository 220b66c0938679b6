// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"

	"golang.org/x/exp/sortbench/gen"
	"golang.org/x/xerrors"
)

// ErrInvalidConfig is wrapped by the error Config.Validate returns.
var ErrInvalidConfig = xerrors.New("invalid configuration")

// Scratch allocators for the merge-buffer algorithm.
const (
	ScratchHeap = "heap"
	ScratchMmap = "mmap"
)

// Config describes one benchmark run.
type Config struct {
	Count  int   // sequences in the batch
	Length int   // elements per sequence
	Bound  int32 // random elements are drawn from [0, Bound)
	Seed   int64
	Shape  gen.Shape

	// Algorithms names the algorithms to run. Empty means all of Names.
	Algorithms []string

	// Scratch is ScratchHeap or ScratchMmap.
	Scratch string
}

// DefaultConfig returns the reference scenario: ten sequences of ten
// thousand random non-negative int32 values.
func DefaultConfig() Config {
	return Config{
		Count:   10,
		Length:  10000,
		Bound:   math.MaxInt32,
		Seed:    1,
		Shape:   gen.ShapeRandom,
		Scratch: ScratchHeap,
	}
}

// Validate reports every problem with c in a single error wrapping
// ErrInvalidConfig.
func (c Config) Validate() error {
	var problems []string
	if c.Count <= 0 {
		problems = append(problems, fmt.Sprintf("count must be positive, got %d", c.Count))
	}
	if c.Length < 0 {
		problems = append(problems, fmt.Sprintf("length must not be negative, got %d", c.Length))
	}
	if c.Bound <= 0 {
		problems = append(problems, fmt.Sprintf("bound must be positive, got %d", c.Bound))
	}
	if !slices.Contains(gen.Shapes, c.Shape) {
		problems = append(problems, fmt.Sprintf("unknown shape %q", c.Shape))
	}
	for _, name := range c.Algorithms {
		if !slices.Contains(Names, name) {
			problems = append(problems, fmt.Sprintf("unknown algorithm %q", name))
		}
	}
	if c.Scratch != ScratchHeap && c.Scratch != ScratchMmap {
		problems = append(problems, fmt.Sprintf("scratch must be %q or %q, got %q", ScratchHeap, ScratchMmap, c.Scratch))
	}
	if len(problems) > 0 {
		return xerrors.Errorf("bench: %s: %w", strings.Join(problems, "; "), ErrInvalidConfig)
	}
	return nil
}

// Batch generates the input batch described by c.
func (c Config) Batch() [][]int32 {
	r := rand.New(rand.NewSource(c.Seed))
	return gen.Batch(r, c.Shape, c.Count, c.Length, c.Bound)
}
