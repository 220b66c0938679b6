// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slog"
)

type zerologSink struct {
	l zerolog.Logger
}

func newZerologSink(w io.Writer) *zerologSink {
	return &zerologSink{l: zerolog.New(w)}
}

func (s *zerologSink) write(r slog.Record, fields []field) error {
	e := s.l.WithLevel(zerologLevel(r.Level))
	if !r.Time.IsZero() {
		e = e.Time(zerolog.TimestampFieldName, r.Time)
	}
	for _, f := range fields {
		switch v := f.value.(type) {
		case string:
			e = e.Str(f.key, v)
		case int64:
			e = e.Int64(f.key, v)
		case time.Duration:
			e = e.Dur(f.key, v)
		case error:
			e = e.AnErr(f.key, v)
		default:
			e = e.Interface(f.key, v)
		}
	}
	e.Msg(r.Message)
	return nil
}

func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l >= slog.LevelError:
		return zerolog.ErrorLevel
	case l >= slog.LevelWarn:
		return zerolog.WarnLevel
	case l >= slog.LevelInfo:
		return zerolog.InfoLevel
	case l >= slog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
