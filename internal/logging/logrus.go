// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slog"
)

type logrusSink struct {
	l *logrus.Logger
}

func newLogrusSink(w io.Writer) *logrusSink {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	l.SetLevel(logrus.TraceLevel)
	return &logrusSink{l: l}
}

func (s *logrusSink) write(r slog.Record, fields []field) error {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.key] = f.value
	}
	e := s.l.WithFields(data)
	if !r.Time.IsZero() {
		e = e.WithTime(r.Time)
	}
	e.Log(logrusLevel(r.Level), r.Message)
	return nil
}

func logrusLevel(l slog.Level) logrus.Level {
	switch {
	case l >= slog.LevelError:
		return logrus.ErrorLevel
	case l >= slog.LevelWarn:
		return logrus.WarnLevel
	case l >= slog.LevelInfo:
		return logrus.InfoLevel
	case l >= slog.LevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
