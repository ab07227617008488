// Package unionfind provides a fixed-size disjoint-set (union-find) structure
// over the integer elements 0..k-1.
//
// What:
//
//   - UnionFind tracks a partition of k elements into connected components.
//   - Union merges two components; Find returns a component's root id.
//   - Connected answers "same component?" with two Find calls.
//
// How:
//
//   - Weighted quick-union: the root of the smaller tree is attached under the
//     root of the larger one, so tree height stays O(log k).
//   - Path halving in Find: every visited node is re-pointed to its grandparent.
//
// Complexity:
//
//   - New:                   O(k) time, O(k) memory.
//   - Find/Union/Connected:  O(α(k)) amortized, α = inverse Ackermann.
//
// Errors:
//
//   - ErrInvalidSize: k < 0.
//   - ErrOutOfRange:  element id outside [0, k).
//
// Concurrency:
//
//   - A UnionFind is NOT safe for concurrent use; even Find mutates the forest.
package unionfind
