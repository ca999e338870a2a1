// Package apriori defines sentinel errors and functional options for mining.
package apriori

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidSupport is returned when the support threshold is below 1.
	ErrInvalidSupport = errors.New("apriori: support must be at least 1")

	// ErrNilCompare is returned when MineFunc receives a nil item comparator.
	ErrNilCompare = errors.New("apriori: item comparator is nil")

	// ErrUnsortedTransaction indicates that a transaction's items are not in
	// ascending order under the comparator.
	ErrUnsortedTransaction = errors.New("apriori: transaction items are not ascending")

	// ErrDuplicateItem indicates that a transaction contains the same item twice.
	ErrDuplicateItem = errors.New("apriori: transaction contains a duplicate item")
)

// Option configures optional mining behavior.
// Use with Mine(transactions, support, opts...).
type Option func(*Options)

// Options holds configurable parameters for a mining run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Workers is the number of goroutines used for support counting.
	// Default is 1 (sequential).
	Workers int

	// MaxSize, if positive, stops the search after itemsets of this size.
	// Default is 0 (no limit).
	MaxSize int

	// Logger receives progress records; defaults to logr.Discard().
	Logger logr.Logger

	// Validate enables the precondition scan over all transactions.
	// Default is true.
	Validate bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - One worker
//   - No size limit
//   - Discarding logger
//   - Input validation enabled
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  1,
		MaxSize:  0,
		Logger:   logr.Discard(),
		Validate: true,
	}
}

// WithContext returns an Option that sets the Context for the run.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers returns an Option that shards support counting over n goroutines.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("apriori: WithWorkers(n<1)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMaxSize returns an Option that stops mining after itemsets of size n.
// Zero means no limit. Panics if n < 0.
func WithMaxSize(n int) Option {
	if n < 0 {
		panic("apriori: WithMaxSize(n<0)")
	}
	return func(o *Options) {
		o.MaxSize = n
	}
}

// WithLogger returns an Option that installs l for progress logging.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithoutValidation returns an Option that skips the transaction precondition
// scan. Unsorted or duplicate-containing input then yields unspecified counts.
func WithoutValidation() Option {
	return func(o *Options) {
		o.Validate = false
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
