package bitvec

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Pair is one operand pair of a batch reduction.
type Pair struct {
	A, B Vector
}

type batchOptions struct {
	concurrency int
	logger      *Logger
}

// BatchOption configures CountBatch.
type BatchOption func(*batchOptions)

// WithConcurrency bounds the number of pairs reduced in parallel.
// Defaults to runtime.GOMAXPROCS(0).
func WithConcurrency(n int) BatchOption {
	return func(o *batchOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger configures the logger used for batch completion records.
// If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) BatchOption {
	return func(o *batchOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// CountBatch reduces many operand pairs under op concurrently and returns
// the per-pair counts in input order. Each individual reduction is the same
// synchronous kernel as Count. The first failing pair cancels the remaining
// work and its error is returned.
//
// The tail sanitizer writes operands in place, so a vector must not appear
// in more than one pair.
func CountBatch(ctx context.Context, op Op, pairs []Pair, optFns ...BatchOption) ([]int, error) {
	opts := batchOptions{
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()
	counts := make([]int, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency)

	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := Count(op, p.A, p.B)
			if err != nil {
				return err
			}
			counts[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts.logger.Debug("batch count completed",
		"op", op.String(),
		"pairs", len(pairs),
		"duration", time.Since(start),
	)

	return counts, nil
}
