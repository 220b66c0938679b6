// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench times the algorithms of package sorts over batches of
// sequences and checks their output against slices.Sort.
//
// TimeInPlace and TimeMove are the timing primitives. A Runner applies
// them to every Algorithm on an independent copy of one batch, logs and
// traces each result, and returns a MismatchError for any algorithm
// whose output disagrees with the oracle.
package bench
