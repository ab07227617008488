// Package percolation models site percolation on an n×n square lattice.
//
// What:
//
//   - Percolation owns one grid of blocked/open sites and a union-find forest
//     over the n² sites plus two virtual sentinels (top and bottom).
//   - Open(row, col) opens a site and joins it to its open 4-neighbors.
//   - IsFull reports whether an open site is connected to the top row.
//   - Percolates reports whether the top row is connected to the bottom row.
//
// Why:
//
//   - The virtual top/bottom sentinels turn "does the system percolate?" into a
//     single connectivity query instead of a scan over two rows.
//
// Coordinates:
//
//   - The public API is 1-indexed: row and col lie in [1, n].
//   - Internally a site (r, c), 0-indexed, lives at linear index r*n + c.
//   - Sentinels are appended after the sites: top = n², bottom = n²+1.
//
// Complexity:
//
//   - New:                 O(n²) time and memory.
//   - Open/IsFull:         O(α(n²)) amortized.
//   - IsOpen/Percolates:   O(1) / O(α(n²)).
//
// Errors:
//
//   - ErrInvalidArgument: n ≤ 0, or a row/col outside [1, n]. Validation always
//     happens before any state changes.
//
// Concurrency:
//
//   - A Percolation is owned by a single goroutine; it is not safe for
//     concurrent use.
package percolation
