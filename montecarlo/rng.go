package montecarlo

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// resolveSeed applies the seed policy: 0 ⇒ defaultRNGSeed, otherwise verbatim.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

// deriveSeed mixes a base seed and a stream id with the SplitMix64 finalizer,
// so neighboring stream ids produce uncorrelated seeds.
// Complexity: O(1).
func deriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// trialRNG returns the private RNG stream of trial number `trial`.
// The stream depends only on (seed, trial), never on scheduling.
func trialRNG(seed int64, trial int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(resolveSeed(seed), uint64(trial))))
}

// uniform returns an integer drawn uniformly from [lo, hi). Requires lo < hi.
func uniform(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo)
}

// permRange returns a Fisher–Yates permutation of 0..n-1 drawn from r.
// Complexity: O(n) time and memory.
func permRange(n int, r *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
