package montecarlo_test

import (
	"testing"

	"github.com/katalvlaran/percolation/montecarlo"
)

// BenchmarkRun compares strategies and worker counts on 100 trials of a
// 100×100 grid.
func BenchmarkRun(b *testing.B) {
	cases := []struct {
		name string
		opts []montecarlo.Option
	}{
		{"Rejection/Seq", []montecarlo.Option{montecarlo.WithStrategy(montecarlo.Rejection)}},
		{"Shuffle/Seq", []montecarlo.Option{montecarlo.WithStrategy(montecarlo.Shuffle)}},
		{"Rejection/W4", []montecarlo.Option{montecarlo.WithWorkers(4)}},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = montecarlo.Run(100, 100, tc.opts...)
			}
		})
	}
}
