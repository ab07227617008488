package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/unionfind"
)

// BenchmarkUnionFind measures random unions followed by connectivity queries
// over one million elements.
// Complexity: O(k·α(k)).
func BenchmarkUnionFind(b *testing.B) {
	const k = 1_000_000
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, k)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(k), rng.Intn(k)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		uf, _ := unionfind.New(k)
		for _, p := range pairs {
			_, _ = uf.Union(p[0], p[1])
		}
		for _, p := range pairs {
			_, _ = uf.Connected(p[0], p[1])
		}
	}
}
