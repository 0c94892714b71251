// SPDX-License-Identifier: MIT
// Package: driver
//
// driver.go - trial loop and atomic emission.

package driver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cmatfixture/constraint"
	"github.com/katalvlaran/cmatfixture/fixture"
	"github.com/katalvlaran/cmatfixture/sampler"
	"github.com/katalvlaran/cmatfixture/serialize"
)

// Sink receives one rendered family sequence.
type Sink func(k fixture.Kind, data []byte) error

// Driver generates and emits fixture sequences.
type Driver struct {
	cfg  config
	root *sampler.Sampler
	mu   sync.Mutex // serializes progress counting and callbacks
}

// New builds a Driver.
func New(opts ...Option) *Driver {
	cfg := newConfig(opts...)

	return &Driver{
		cfg:  cfg,
		root: sampler.New(sampler.WithSeed(cfg.seed)),
	}
}

// Trials returns the number of records a sequence of family k will hold.
func (d *Driver) Trials(k fixture.Kind) int {
	if n, ok := d.cfg.trials[k]; ok {
		return n
	}

	return k.Trials()
}

// trialSampler returns the sampler owned by trial i of family k. It depends
// only on (seed, k, i).
func (d *Driver) trialSampler(k fixture.Kind, i int) *sampler.Sampler {
	return d.root.Derive(uint64(k)).Derive(uint64(i))
}

// Generate runs all trials of family k and returns the records in trial order.
//
// Errors: fixture.ErrUnknownKind, ErrGeneration wrapping the first trial
// failure, or ctx.Err() if the context is cancelled between trials.
func (d *Driver) Generate(ctx context.Context, k fixture.Kind) ([]fixture.Record, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("Generate(%v): %w", k, fixture.ErrUnknownKind)
	}

	var (
		total      = d.Trials(k)
		recs       = make([]fixture.Record, total)
		done       atomic.Int64
		rejections atomic.Int64
		start      = time.Now()
		next       atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	workers := min(d.cfg.workers, total)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= total {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}

				r := constraint.New(d.trialSampler(k, i),
					constraint.WithRetryCap(d.cfg.retryCap),
					constraint.WithMaxDim(d.cfg.maxDim))
				rec, err := fixture.Generate(k, r)
				rejections.Add(int64(r.Rejections()))
				if err != nil {
					return fmt.Errorf("%w: %v trial %d: %w", ErrGeneration, k, i, err)
				}
				recs[i] = rec
				d.report(k, &done, total)
			}
		})
	}
	if err := g.Wait(); err != nil {
		d.cfg.logger.Error("family aborted", "family", k.String(), "err", err)
		return nil, err
	}

	d.cfg.logger.Debug("family generated",
		"family", k.String(),
		"trials", total,
		"rejections", rejections.Load(),
		"workers", workers,
		"elapsed", time.Since(start))

	return recs, nil
}

// report counts a finished trial and notifies the progress observer. The
// count is taken under the lock so observers see done increase strictly.
func (d *Driver) report(k fixture.Kind, done *atomic.Int64, total int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := int(done.Add(1))
	if d.cfg.progress != nil {
		d.cfg.progress(k, n, total)
	}
}

// Render generates family k and returns the complete rendered sequence.
func (d *Driver) Render(ctx context.Context, k fixture.Kind) ([]byte, error) {
	recs, err := d.Generate(ctx, k)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = serialize.Sequence(&buf, k, recs); err != nil {
		return nil, fmt.Errorf("Render(%v): %w", k, err)
	}

	return buf.Bytes(), nil
}

// Emit renders family k and writes it to w in one Write call. Nothing is
// written if generation or rendering fails.
func (d *Driver) Emit(ctx context.Context, w io.Writer, k fixture.Kind) error {
	data, err := d.Render(ctx, k)
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("Emit(%v): %w", k, err)
	}

	d.cfg.logger.Info("family emitted", "family", k.String(), "bytes", len(data))

	return nil
}

// EmitAll renders each family in order and hands it to sink. The first error
// stops the run; families already delivered stay delivered.
func (d *Driver) EmitAll(ctx context.Context, sink Sink, kinds ...fixture.Kind) error {
	if len(kinds) == 0 {
		return ErrNoFamilies
	}

	for _, k := range kinds {
		data, err := d.Render(ctx, k)
		if err != nil {
			return err
		}
		if err = sink(k, data); err != nil {
			return fmt.Errorf("EmitAll(%v): %w", k, err)
		}
		d.cfg.logger.Info("family emitted", "family", k.String(), "bytes", len(data))
	}

	return nil
}
