// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slog"
	"golang.org/x/exp/sortbench/gen"
	"golang.org/x/exp/sortbench/stats"
	"golang.org/x/xerrors"
)

const tracerName = "golang.org/x/exp/sortbench/bench"

// A Result is the timing of one algorithm over a batch.
type Result struct {
	Algorithm string
	Mean      time.Duration
	Summary   stats.Summary
}

// A Report holds the results of Runner.Run in the order the algorithms
// ran. The oracle comes last, named Builtin.
type Report struct {
	Sequences int
	Length    int
	Results   []Result
}

// Fastest returns the result with the smallest mean, ignoring the oracle.
// It reports false if there is none.
func (r *Report) Fastest() (Result, bool) {
	var best Result
	found := false
	for _, res := range r.Results {
		if res.Algorithm == Builtin {
			continue
		}
		if !found || res.Mean < best.Mean {
			best, found = res, true
		}
	}
	return best, found
}

// A MismatchError reports an algorithm whose output differs from the
// oracle's.
type MismatchError struct {
	Algorithm string
	Sequence  int // index in the batch
	Index     int // first differing element, or -1 if the lengths differ
}

func (e *MismatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("bench: %s: sequence %d has the wrong length", e.Algorithm, e.Sequence)
	}
	return fmt.Sprintf("bench: %s: sequence %d differs from %s at element %d", e.Algorithm, e.Sequence, Builtin, e.Index)
}

// A Runner times algorithms over a batch and validates their output.
type Runner[E constraints.Ordered] struct {
	// Logger receives one record per algorithm. If nil, slog.Default is used.
	Logger *slog.Logger
	// Tracer starts one span per run and one per algorithm. If nil, the
	// global tracer provider is used.
	Tracer trace.Tracer
}

func (r *Runner[E]) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Runner[E]) tracer() trace.Tracer {
	if r.Tracer != nil {
		return r.Tracer
	}
	return otel.Tracer(tracerName)
}

// Run sorts a separate copy of batch with each of algs and with the
// oracle, then compares every output with the oracle's. batch itself is
// not modified.
//
// If any output differs, Run returns the full report together with an
// error joining one *MismatchError per failing algorithm. Run stops
// early, between algorithms, if ctx is done.
func (r *Runner[E]) Run(ctx context.Context, batch [][]E, algs []Algorithm[E]) (*Report, error) {
	if len(batch) == 0 {
		return nil, errors.New("bench: empty batch")
	}
	for _, alg := range algs {
		if (alg.InPlace == nil) == (alg.Move == nil) {
			return nil, xerrors.Errorf("bench: algorithm %q must set exactly one of InPlace and Move", alg.Name)
		}
	}
	ctx, span := r.tracer().Start(ctx, "Run", trace.WithAttributes(
		attribute.Int("sequences", len(batch)),
		attribute.Int("length", len(batch[0])),
		attribute.Int("algorithms", len(algs)),
	))
	defer span.End()

	elements := 0
	for _, s := range batch {
		elements += len(s)
	}
	r.logger().LogAttrs(ctx, slog.LevelInfo, "benchmark starting",
		slog.Int("sequences", len(batch)),
		slog.String("elements", humanize.Comma(int64(elements))),
		slog.Int("algorithms", len(algs)),
	)

	report := &Report{Sequences: len(batch), Length: len(batch[0])}
	outputs := make([][][]E, len(algs))
	for i, alg := range algs {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "canceled")
			return nil, err
		}
		var res Result
		res, outputs[i] = r.runOne(ctx, alg, gen.CloneBatch(batch))
		report.Results = append(report.Results, res)
	}
	res, want := r.runOne(ctx, oracle[E](), gen.CloneBatch(batch))
	report.Results = append(report.Results, res)

	var errs []error
	for i, alg := range algs {
		if err := compare(alg.Name, outputs[i], want); err != nil {
			r.logger().LogAttrs(ctx, slog.LevelError, "output differs from oracle",
				slog.String("algorithm", alg.Name),
				slog.Any("err", err),
			)
			span.RecordError(err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d algorithms disagree with %s", len(errs), Builtin))
		return report, errors.Join(errs...)
	}
	return report, nil
}

func (r *Runner[E]) runOne(ctx context.Context, alg Algorithm[E], batch [][]E) (Result, [][]E) {
	ctx, span := r.tracer().Start(ctx, alg.Name)
	defer span.End()

	var t Timing
	if alg.Move != nil {
		batch, t = MeasureMove(batch, alg.Move)
	} else {
		t = MeasureInPlace(batch, alg.InPlace)
	}
	res := Result{Algorithm: alg.Name, Mean: t.Mean, Summary: t.Summary()}

	span.SetAttributes(
		attribute.String("algorithm", alg.Name),
		attribute.Int64("mean_ns", int64(res.Mean)),
		attribute.Int64("median_ns", int64(res.Summary.Median)),
	)
	r.logger().LogAttrs(ctx, slog.LevelInfo, "sorted",
		slog.String("algorithm", alg.Name),
		slog.Duration("mean", res.Mean),
		slog.Duration("median", res.Summary.Median),
		slog.Duration("stddev", res.Summary.StdDev),
		slog.Duration("min", res.Summary.Min),
		slog.Duration("max", res.Summary.Max),
	)
	return res, batch
}

func compare[E comparable](name string, got, want [][]E) error {
	for i := range want {
		if slices.Equal(got[i], want[i]) {
			continue
		}
		if len(got[i]) != len(want[i]) {
			return &MismatchError{Algorithm: name, Sequence: i, Index: -1}
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				return &MismatchError{Algorithm: name, Sequence: i, Index: j}
			}
		}
	}
	return nil
}
