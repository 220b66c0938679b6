// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slog"
)

type zapSink struct {
	l *zap.Logger
}

func newZapSink(w io.Writer) *zapSink {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return &zapSink{l: zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))}
}

func (s *zapSink) write(r slog.Record, fields []field) error {
	ce := s.l.Check(zapLevel(r.Level), r.Message)
	if ce == nil {
		return nil
	}
	if !r.Time.IsZero() {
		ce.Time = r.Time
	}
	zfs := make([]zap.Field, len(fields))
	for i, f := range fields {
		zfs[i] = zap.Any(f.key, f.value)
	}
	ce.Write(zfs...)
	return nil
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l >= slog.LevelError:
		return zapcore.ErrorLevel
	case l >= slog.LevelWarn:
		return zapcore.WarnLevel
	case l >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
