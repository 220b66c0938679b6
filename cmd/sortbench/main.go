// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The sortbench command times the sorts of golang.org/x/exp/sortbench/sorts
// over a batch of random int32 sequences and checks every result against
// slices.Sort. It exits with status 1 if any algorithm disagrees.
//
// Example usage:
//
//	sortbench -n 10 -len 10000
//	sortbench -algs quick,merge-buffer -scratch mmap -shape reversed -len 2000
//	sortbench -log zap -level debug -trace
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/exp/slog"
	"golang.org/x/exp/sortbench/bench"
	"golang.org/x/exp/sortbench/gen"
	"golang.org/x/exp/sortbench/internal/logging"
	"golang.org/x/exp/sortbench/internal/rawbuf"
	"golang.org/x/exp/sortbench/sorts"
)

type options struct {
	cfg       bench.Config
	logFormat string
	level     slog.Level
	trace     bool
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	def := bench.DefaultConfig()
	fs := flag.NewFlagSet("sortbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: sortbench [flags]\n")
		fs.PrintDefaults()
	}
	var (
		count   = fs.Int("n", def.Count, "number of sequences in the batch")
		length  = fs.Int("len", def.Length, "elements per sequence")
		bound   = fs.Int("bound", int(def.Bound), "random elements are drawn from [0, bound)")
		seed    = fs.Int64("seed", def.Seed, "random seed")
		shape   = fs.String("shape", string(def.Shape), "input shape: random, sorted, reversed or mixed")
		algs    = fs.String("algs", "", "comma-separated algorithms to run (default all: "+strings.Join(bench.Names, ",")+")")
		scratch = fs.String("scratch", def.Scratch, "scratch memory for merge-buffer: heap or mmap")
		format  = fs.String("log", "text", "log format: "+strings.Join(logging.Formats, ", "))
		level   = fs.String("level", "info", "minimum log level")
		trace   = fs.Bool("trace", false, "log a trace span for the run and every algorithm")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	sh, err := gen.ParseShape(*shape)
	if err != nil {
		return nil, err
	}
	lvl, err := logging.ParseLevel(*level)
	if err != nil {
		return nil, err
	}
	if *bound <= 0 || *bound > math.MaxInt32 {
		return nil, fmt.Errorf("bound %d out of range (0, %d]", *bound, math.MaxInt32)
	}
	opts := &options{
		cfg: bench.Config{
			Count:   *count,
			Length:  *length,
			Bound:   int32(*bound),
			Seed:    *seed,
			Shape:   sh,
			Scratch: *scratch,
		},
		logFormat: *format,
		level:     lvl,
		trace:     *trace,
	}
	if *algs != "" {
		opts.cfg.Algorithms = strings.Split(*algs, ",")
	}
	if err := opts.cfg.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func run(ctx context.Context, opts *options, w io.Writer) error {
	logger, err := logging.New(opts.logFormat, w, opts.level)
	if err != nil {
		return err
	}
	if opts.trace {
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(&logExporter{logger: logger}))
		defer tp.Shutdown(ctx)
		otel.SetTracerProvider(tp)
	}

	var alloc sorts.Allocator[int32]
	if opts.cfg.Scratch == bench.ScratchMmap {
		arena, err := rawbuf.New[int32](opts.cfg.Length)
		if err != nil {
			return err
		}
		defer func() {
			st := arena.Stats()
			logger.Info("scratch arena",
				"allocs", st.Allocs,
				"frees", st.Frees,
				"peak", humanize.Bytes(st.HighWaterBytes()),
			)
			if err := arena.Close(); err != nil {
				logger.Error("closing scratch arena", "err", err)
			}
		}()
		alloc = arena
	}

	algs, err := bench.Select(bench.Algorithms[int32](alloc), opts.cfg.Algorithms)
	if err != nil {
		return err
	}
	runner := &bench.Runner[int32]{Logger: logger}
	report, err := runner.Run(ctx, opts.cfg.Batch(), algs)
	if report != nil {
		if best, ok := report.Fastest(); ok {
			logger.Info("fastest", "algorithm", best.Algorithm, "mean", best.Mean)
		}
	}
	return err
}

func main() {
	log.SetPrefix("sortbench: ")
	log.SetFlags(0)

	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := run(context.Background(), opts, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
