// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/slog"
)

type gokitSink struct {
	l log.Logger
}

func newGokitSink(w io.Writer) *gokitSink {
	return &gokitSink{l: log.NewLogfmtLogger(log.NewSyncWriter(w))}
}

func (s *gokitSink) write(r slog.Record, fields []field) error {
	kv := make([]any, 0, 6+2*len(fields))
	if !r.Time.IsZero() {
		kv = append(kv, "ts", r.Time)
	}
	kv = append(kv, level.Key(), gokitLevel(r.Level), "msg", r.Message)
	for _, f := range fields {
		kv = append(kv, f.key, f.value)
	}
	return s.l.Log(kv...)
}

func gokitLevel(l slog.Level) level.Value {
	switch {
	case l >= slog.LevelError:
		return level.ErrorValue()
	case l >= slog.LevelWarn:
		return level.WarnValue()
	case l >= slog.LevelInfo:
		return level.InfoValue()
	default:
		return level.DebugValue()
	}
}
