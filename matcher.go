/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package modusgeo

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMatchRoutines = 4
	matchBatchSize       = 1024
)

// matcherOptions holds configuration options for the matcher.
//
// concurrency: the number of goroutines MatchAll fans out over.
// logger: the logger for the matcher.
type matcherOptions struct {
	concurrency int
	logger      logr.Logger
}

// MatcherOpt is a function that configures a matcher
type MatcherOpt func(*matcherOptions)

// WithConcurrency sets the number of goroutines MatchAll uses. Values below
// one fall back to the default.
func WithConcurrency(n int) MatcherOpt {
	return func(o *matcherOptions) {
		o.concurrency = n
	}
}

// WithLogger sets a structured logger for the matcher
func WithLogger(logger logr.Logger) MatcherOpt {
	return func(o *matcherOptions) {
		o.logger = logger
	}
}

// Matcher wraps a Region as the per-row predicate a scan loop invokes.
// Matches is pure and safe to call concurrently; MatchAll handles the
// fan-out for callers that want the batch evaluated in parallel.
type Matcher struct {
	region      Region
	concurrency int
	logger      logr.Logger
}

// NewMatcher creates a Matcher over the given Region.
//
// Optional configuration can be provided via the opts parameter:
//   - WithConcurrency(int) - number of parallel workers for MatchAll
//   - WithLogger(logr.Logger) - structured logging with custom verbosity levels
func NewMatcher(region Region, opts ...MatcherOpt) (*Matcher, error) {
	if region == nil {
		return nil, errors.New("matcher requires a region")
	}
	options := matcherOptions{
		concurrency: defaultMatchRoutines,
		logger:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.concurrency < 1 {
		options.concurrency = defaultMatchRoutines
	}
	return &Matcher{
		region:      region,
		concurrency: options.concurrency,
		logger:      options.logger,
	}, nil
}

// Region returns the region this matcher evaluates against.
func (m *Matcher) Region() Region { return m.region }

// Matches reports whether the point is contained in the matcher's region.
func (m *Matcher) Matches(pt Coordinate) (bool, error) {
	ok, err := m.region.Contains(pt)
	if err != nil {
		m.logger.Error(err, "Region evaluation failed", "kind", m.region.Kind().String())
		return false, err
	}
	return ok, nil
}

// MatchAll evaluates every point against the region and returns one result
// per point, in order. Work is split into batches across the configured
// number of goroutines. Evaluation has no ordering dependency between
// points, so results are deterministic regardless of scheduling.
func (m *Matcher) MatchAll(ctx context.Context, pts []Coordinate) ([]bool, error) {
	out := make([]bool, len(pts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for start := 0; start < len(pts); start += matchBatchSize {
		start, end := start, min(start+matchBatchSize, len(pts))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				ok, err := m.region.Contains(pts[i])
				if err != nil {
					return err
				}
				out[i] = ok
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	m.logger.V(2).Info("Evaluated batch", "kind", m.region.Kind().String(), "points", len(pts))
	return out, nil
}
