// Package montecarlo estimates the site-percolation threshold of an n×n
// lattice by repeated independent trials.
//
// What:
//
//   - Run performs `trials` experiments. Each experiment starts from a fresh,
//     fully blocked percolation.Percolation and opens uniformly random
//     unopened sites until the system percolates; the fraction of open sites
//     at that moment is the trial's threshold.
//   - Stats exposes the sample mean, the sample standard deviation (n-1
//     denominator) and the 95% confidence interval mean ∓ 1.96·σ/√T.
//
// Options:
//
//   - WithSeed:     reproducible runs; seed 0 selects a fixed default seed.
//   - WithWorkers:  spread trials over a bounded worker pool.
//   - WithStrategy: Rejection (resample until an unopened site is hit) or
//     Shuffle (walk a random permutation of the sites). Both pick uniformly
//     among the unopened sites.
//   - WithLogger:   per-trial debug logging through log/slog.
//
// Determinism:
//
//   - Trial i always draws from its own RNG stream derived from (seed, i), so
//     the thresholds are identical for any worker count.
//
// Degenerate input:
//
//   - With trials == 1 the sample standard deviation is undefined: Stddev,
//     ConfidenceLo and ConfidenceHi return NaN. This is a documented result,
//     not an error.
//
// Errors:
//
//   - ErrInvalidArgument (shared with package percolation): n ≤ 0 or trials ≤ 0.
//   - ErrUnknownStrategy: a Strategy value outside Rejection/Shuffle.
package montecarlo
