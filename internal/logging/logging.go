// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds slog loggers that write through slog's own
// handlers or through a third-party logging library.
package logging

import (
	"context"
	"io"
	"slices"

	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

// Formats lists the accepted values for New's format argument.
var Formats = []string{"text", "json", "zap", "zerolog", "logrus", "gokit", "logr"}

// New returns a logger writing records at or above level to w in the
// named format.
func New(format string, w io.Writer, level slog.Leveler) (*slog.Logger, error) {
	var h slog.Handler
	switch format {
	case "text":
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case "json":
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "zap":
		h = newBridge(newZapSink(w), level)
	case "zerolog":
		h = newBridge(newZerologSink(w), level)
	case "logrus":
		h = newBridge(newLogrusSink(w), level)
	case "gokit":
		h = newBridge(newGokitSink(w), level)
	case "logr":
		h = newBridge(newLogrSink(w), level)
	default:
		return nil, xerrors.Errorf("logging: unknown format %q", format)
	}
	return slog.New(h), nil
}

// ParseLevel parses a level name such as "info" or "debug-2".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, xerrors.Errorf("logging: %w", err)
	}
	return l, nil
}

// A field is an attribute flattened for a backend without groups.
type field struct {
	key   string
	value any
}

// A sink writes one record with its flattened attributes.
type sink interface {
	write(r slog.Record, fields []field) error
}

// bridge is a slog.Handler that flattens attributes, joining group names
// with dots, and hands them to a sink. The sink does no level filtering
// of its own.
type bridge struct {
	sink   sink
	level  slog.Leveler
	fields []field // from WithAttrs
	prefix string  // from WithGroup
}

func newBridge(s sink, level slog.Leveler) *bridge {
	if level == nil {
		level = slog.LevelInfo
	}
	return &bridge{sink: s, level: level}
}

func (b *bridge) Enabled(_ context.Context, l slog.Level) bool {
	return l >= b.level.Level()
}

func (b *bridge) Handle(_ context.Context, r slog.Record) error {
	fields := slices.Clip(b.fields)
	r.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, b.prefix, a)
		return true
	})
	return b.sink.write(r, fields)
}

func (b *bridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	b2 := *b
	b2.fields = slices.Clip(b.fields)
	for _, a := range attrs {
		b2.fields = appendAttr(b2.fields, b.prefix, a)
	}
	return &b2
}

func (b *bridge) WithGroup(name string) slog.Handler {
	if name == "" {
		return b
	}
	b2 := *b
	b2.prefix = b.prefix + name + "."
	return &b2
}

func appendAttr(fields []field, prefix string, a slog.Attr) []field {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range v.Group() {
			fields = appendAttr(fields, prefix, ga)
		}
		return fields
	}
	if a.Key == "" {
		return fields
	}
	return append(fields, field{prefix + a.Key, v.Any()})
}
