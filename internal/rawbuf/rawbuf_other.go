// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !darwin

package rawbuf

import "unsafe"

// Without anonymous mappings the region comes from the Go heap. Fixed
// element types hold no pointers, so the collector has nothing to scan.
func mapRegion(size int) ([]byte, error) {
	// Back the bytes with uint64 words so that every Fixed type is aligned.
	words := make([]uint64, (size+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size), nil
}

func unmapRegion(b []byte) error {
	return nil
}
