package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// New creates an n×n grid with every site blocked.
// Every row-1 site is joined to the top sentinel and every row-n site to the
// bottom sentinel; for n == 1 the single site is joined to both.
// Returns ErrInvalidArgument if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Percolation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size %d must be positive", ErrInvalidArgument, n)
	}
	sites := n * n
	uf, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}
	p := &Percolation{
		n:      n,
		open:   make([]bool, sites),
		uf:     uf,
		top:    sites,
		bottom: sites + 1,
	}
	for c := 0; c < n; c++ {
		if _, err = uf.Union(p.index(0, c), p.top); err != nil {
			return nil, err
		}
		if _, err = uf.Union(p.index(n-1, c), p.bottom); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Size returns the grid side length n.
func (p *Percolation) Size() int {
	return p.n
}

// Sites returns the number of sites n².
func (p *Percolation) Sites() int {
	return len(p.open)
}

// Open opens site (row, col) if it is not already open and connects it to
// every open orthogonal neighbor. Opening an open site is a no-op.
// Returns ErrInvalidArgument if row or col is outside [1, n].
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Open(row, col int) error {
	if err := p.validate(row, col); err != nil {
		return err
	}
	r, c := row-1, col-1
	i := p.index(r, c)
	if p.open[i] {
		return nil
	}
	p.open[i] = true
	p.opened++

	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if !p.inBounds(nr, nc) || !p.open[p.index(nr, nc)] {
			continue
		}
		if _, err := p.uf.Union(i, p.index(nr, nc)); err != nil {
			return err
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrInvalidArgument if row or col is outside [1, n].
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}

	return p.open[p.index(row-1, col-1)], nil
}

// IsFull reports whether site (row, col) is open and connected to the top
// sentinel, i.e. reachable from the top row through open sites.
// Returns ErrInvalidArgument if row or col is outside [1, n].
// Complexity: O(α(n²)) amortized.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}
	i := p.index(row-1, col-1)
	if !p.open[i] {
		return false, nil
	}

	return p.uf.Connected(i, p.top)
}

// NumberOfOpenSites returns how many sites have been opened so far.
func (p *Percolation) NumberOfOpenSites() int {
	return p.opened
}

// OpenFraction returns NumberOfOpenSites / n².
func (p *Percolation) OpenFraction() float64 {
	return float64(p.opened) / float64(len(p.open))
}

// Percolates reports whether the top sentinel is connected to the bottom one.
// A 1×1 grid has its only site wired to both sentinels, so it percolates
// exactly when that site is open.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Percolates() bool {
	if p.n == 1 {
		return p.open[0]
	}
	// Sentinels are always in range.
	ok, _ := p.uf.Connected(p.top, p.bottom)

	return ok
}

// Coordinate converts a 0-based row-major site index into a 1-based
// (row, col) pair accepted by Open, IsOpen and IsFull.
// Complexity: O(1).
func (p *Percolation) Coordinate(idx int) (row, col int) {
	return idx/p.n + 1, idx%p.n + 1
}

// index maps 0-based (r, c) to the row-major index r*n + c.
func (p *Percolation) index(r, c int) int {
	return r*p.n + c
}

// inBounds reports whether 0-based (r, c) lies inside the grid.
func (p *Percolation) inBounds(r, c int) bool {
	return r >= 0 && r < p.n && c >= 0 && c < p.n
}

// validate checks 1-based (row, col) against [1, n].
func (p *Percolation) validate(row, col int) error {
	if row < 1 || row > p.n {
		return fmt.Errorf("%w: row %d outside [1, %d]", ErrInvalidArgument, row, p.n)
	}
	if col < 1 || col > p.n {
		return fmt.Errorf("%w: col %d outside [1, %d]", ErrInvalidArgument, col, p.n)
	}

	return nil
}
