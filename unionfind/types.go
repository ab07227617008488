package unionfind

import "errors"

// Sentinel errors for union-find operations.
var (
	// ErrInvalidSize indicates a negative element count was requested.
	ErrInvalidSize = errors.New("unionfind: element count must be non-negative")
	// ErrOutOfRange indicates an element id outside [0, k).
	ErrOutOfRange = errors.New("unionfind: element out of range")
)

// UnionFind is a weighted quick-union forest with path halving.
// parent[i] == i marks a root; size[r] is valid only for roots.
type UnionFind struct {
	parent []int
	size   []int
	count  int // number of components
}
