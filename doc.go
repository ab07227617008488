// Package percolation is the root of a small toolkit for studying site
// percolation on square lattices.
//
// What is inside?
//
//	unionfind/   — weighted quick-union disjoint set with path halving
//	percolation/ — one n×n lattice: open sites, full sites, percolates?
//	montecarlo/  — repeated trials → threshold mean, stddev, 95% CI
//	cmd/percolate — command-line driver
//
// Quick picture (x = open, 4×4 lattice that percolates):
//
//	x . x .
//	x x . .
//	. x . x
//	. x x x
//
// The critical site-occupation probability of the infinite square lattice is
// p* ≈ 0.5927; montecarlo estimates it for finite n.
//
//	go run ./cmd/percolate 200 100
package percolation
