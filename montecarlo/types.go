package montecarlo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/percolation/percolation"
)

// ErrInvalidArgument is percolation.ErrInvalidArgument; both packages report
// bad sizes and counts as the same error kind.
var ErrInvalidArgument = percolation.ErrInvalidArgument

// ErrUnknownStrategy indicates a Strategy value this package does not implement.
var ErrUnknownStrategy = errors.New("montecarlo: unknown site selection strategy")

// confidenceZ is the two-sided 95% quantile of the standard normal distribution.
const confidenceZ = 1.96

// Strategy selects how a trial picks the next site to open.
type Strategy int

const (
	// Rejection draws a random (row, col) and redraws while the site is open.
	Rejection Strategy = iota
	// Shuffle walks a random permutation of all sites, skipping open ones.
	Shuffle
)

// String returns the flag spelling of s.
func (s Strategy) String() string {
	switch s {
	case Rejection:
		return "rejection"
	case Shuffle:
		return "shuffle"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "rejection" or "shuffle" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rejection":
		return Rejection, nil
	case "shuffle":
		return Shuffle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Options configures Run. Use DefaultOptions() and the With* helpers.
type Options struct {
	// Seed feeds the per-trial RNG streams; 0 selects defaultRNGSeed.
	Seed int64
	// Workers bounds the number of concurrent trials; ≤1 runs sequentially.
	Workers int
	// Strategy picks the unopened-site selection method.
	Strategy Strategy
	// Logger receives debug-level progress records.
	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns sequential rejection sampling with the default seed
// and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Seed:     0,
		Workers:  1,
		Strategy: Rejection,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSeed sets the base seed for all trials.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers sets the maximum number of trials run at once.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithStrategy sets the site selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats holds the thresholds of a finished experiment and the statistics
// derived from them. It is immutable after Run returns.
type Stats struct {
	n          int
	seed       int64
	strategy   Strategy
	thresholds []float64
	mean       float64
	stddev     float64
}
