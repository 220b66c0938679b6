// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"
	stdlog "log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"golang.org/x/exp/slog"
)

// logrSink writes through a logr.Logger. logr has no warning or debug
// levels, so the slog level is kept as a "level" value and only errors
// go through Logger.Error.
type logrSink struct {
	l logr.Logger
}

func newLogrSink(w io.Writer) *logrSink {
	return &logrSink{l: stdr.New(stdlog.New(w, "", stdlog.LstdFlags))}
}

func (s *logrSink) write(r slog.Record, fields []field) error {
	kv := make([]any, 0, 2+2*len(fields))
	kv = append(kv, "level", r.Level.String())
	var err error
	for _, f := range fields {
		if e, ok := f.value.(error); ok && err == nil {
			err = e
			continue
		}
		kv = append(kv, f.key, f.value)
	}
	if r.Level >= slog.LevelError {
		s.l.Error(err, r.Message, kv...)
		return nil
	}
	if err != nil {
		kv = append(kv, "error", err)
	}
	s.l.Info(r.Message, kv...)
	return nil
}
