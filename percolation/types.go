package percolation

import (
	"errors"

	"github.com/katalvlaran/percolation/unionfind"
)

// ErrInvalidArgument is returned for a non-positive grid size or a coordinate
// outside [1, n]. Callers match it with errors.Is.
var ErrInvalidArgument = errors.New("percolation: invalid argument")

// neighborOffsets lists the orthogonal neighbors (row, col): N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Percolation is one n×n lattice trial.
// open is row-major and never shrinks: a site once open stays open.
type Percolation struct {
	n      int
	open   []bool
	opened int // number of open sites
	uf     *unionfind.UnionFind
	top    int // virtual top sentinel: n*n
	bottom int // virtual bottom sentinel: n*n + 1
}
