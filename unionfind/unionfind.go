package unionfind

import "fmt"

// New returns a UnionFind of k singleton components.
// Returns ErrInvalidSize if k < 0. k == 0 is a valid, empty structure.
// Complexity: O(k) time and memory.
func New(k int) (*UnionFind, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, k)
	}
	uf := &UnionFind{
		parent: make([]int, k),
		size:   make([]int, k),
		count:  k,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements k.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the current number of disjoint components.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root id of the component containing p.
// Returns ErrOutOfRange if p is not in [0, Len()).
// Complexity: O(α(k)) amortized.
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.root(p), nil
}

// Union merges the components containing p and q.
// It reports whether a merge happened (false if already connected).
// Complexity: O(α(k)) amortized.
func (uf *UnionFind) Union(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	rootP, rootQ := uf.root(p), uf.root(q)
	if rootP == rootQ {
		return false, nil
	}
	// Smaller tree goes under the larger root.
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return true, nil
}

// Connected reports whether p and q belong to the same component.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// Size returns the number of elements in the component containing p.
func (uf *UnionFind) Size(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.size[uf.root(p)], nil
}

// root walks to the root of p, halving the path on the way.
// p must already be validated.
func (uf *UnionFind) root(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

func (uf *UnionFind) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, p, len(uf.parent))
	}

	return nil
}
