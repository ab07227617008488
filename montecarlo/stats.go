package montecarlo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolation/percolation"
)

// Run performs `trials` independent percolation experiments on an n×n grid
// and returns their statistics.
//
// Steps per trial:
//  1. Create a fresh percolation.Percolation(n).
//  2. Until Percolates(): pick a uniformly random unopened site and open it.
//  3. Record NumberOfOpenSites() / n².
//
// Returns ErrInvalidArgument if n ≤ 0 or trials ≤ 0, ErrUnknownStrategy for
// an unsupported Strategy. Only the thresholds are retained.
//
// Complexity: O(T·n²·α(n²)) expected time; O(T + n²·W) memory, W = workers.
func Run(n, trials int, opts ...Option) (*Stats, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size %d must be positive", ErrInvalidArgument, n)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trial count %d must be positive", ErrInvalidArgument, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Strategy != Rejection && o.Strategy != Shuffle {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, o.Strategy)
	}

	o.Logger.Debug("experiment started",
		"n", n,
		"sites", humanize.Comma(int64(n)*int64(n)),
		"trials", humanize.Comma(int64(trials)),
		"workers", o.Workers,
		"strategy", o.Strategy.String(),
		"seed", resolveSeed(o.Seed),
	)

	thresholds := make([]float64, trials)
	if o.Workers <= 1 {
		for i := range thresholds {
			th, err := runTrial(n, i, o)
			if err != nil {
				return nil, err
			}
			thresholds[i] = th
		}
	} else {
		// Each goroutine writes only its own slot.
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for i := range thresholds {
			i := i
			g.Go(func() error {
				th, err := runTrial(n, i, o)
				if err != nil {
					return err
				}
				thresholds[i] = th
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	mean, stddev := stat.MeanStdDev(thresholds, nil)
	s := &Stats{
		n:          n,
		seed:       resolveSeed(o.Seed),
		strategy:   o.Strategy,
		thresholds: thresholds,
		mean:       mean,
		stddev:     stddev,
	}
	o.Logger.Debug("experiment finished", "mean", s.mean, "stddev", s.stddev)

	return s, nil
}

// runTrial runs trial number i to percolation and returns its threshold.
func runTrial(n, i int, o Options) (float64, error) {
	p, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	r := trialRNG(o.Seed, i)
	switch o.Strategy {
	case Shuffle:
		err = openShuffled(p, r)
	default:
		err = openRejection(p, r)
	}
	if err != nil {
		return 0, fmt.Errorf("montecarlo: trial %d: %w", i, err)
	}
	o.Logger.Debug("trial finished",
		"trial", i,
		"open", humanize.Comma(int64(p.NumberOfOpenSites())),
		"threshold", p.OpenFraction(),
	)

	return p.OpenFraction(), nil
}

// openRejection opens random sites until p percolates, redrawing (row, col)
// whenever the drawn site is already open. The loop terminates because at
// least one site stays blocked until the grid percolates.
func openRejection(p *percolation.Percolation, r *rand.Rand) error {
	n := p.Size()
	for !p.Percolates() {
		row, col := uniform(r, 1, n+1), uniform(r, 1, n+1)
		for {
			open, err := p.IsOpen(row, col)
			if err != nil {
				return err
			}
			if !open {
				break
			}
			row, col = uniform(r, 1, n+1), uniform(r, 1, n+1)
		}
		if err := p.Open(row, col); err != nil {
			return err
		}
	}

	return nil
}

// openShuffled opens sites in the order of a random permutation until p
// percolates. A fully open grid always percolates, so the walk never runs dry.
func openShuffled(p *percolation.Percolation, r *rand.Rand) error {
	for _, idx := range permRange(p.Sites(), r) {
		if p.Percolates() {
			return nil
		}
		row, col := p.Coordinate(idx)
		if err := p.Open(row, col); err != nil {
			return err
		}
	}

	return nil
}

// GridSize returns the lattice side length n.
func (s *Stats) GridSize() int {
	return s.n
}

// Trials returns the number of completed trials.
func (s *Stats) Trials() int {
	return len(s.thresholds)
}

// Seed returns the effective base seed (0 already resolved to the default).
func (s *Stats) Seed() int64 {
	return s.seed
}

// Strategy returns the site selection strategy used.
func (s *Stats) Strategy() Strategy {
	return s.strategy
}

// Thresholds returns a copy of the per-trial thresholds in trial order.
func (s *Stats) Thresholds() []float64 {
	out := make([]float64, len(s.thresholds))
	copy(out, s.thresholds)
	return out
}

// Mean returns the sample mean of the thresholds.
func (s *Stats) Mean() float64 {
	return s.mean
}

// Stddev returns the sample standard deviation of the thresholds.
// It is NaN when only one trial was run.
func (s *Stats) Stddev() float64 {
	return s.stddev
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 {
	return s.mean - s.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 {
	return s.mean + s.halfWidth()
}

func (s *Stats) halfWidth() float64 {
	return confidenceZ * s.stddev / math.Sqrt(float64(len(s.thresholds)))
}
