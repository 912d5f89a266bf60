// Package builder provides internal helper functions and types
// for mapping constructor-local indices onto store vertices.
package builder

import "fmt"

// IDFn maps a constructor's zero-based local index to a store vertex.
// It must be pure and deterministic.
type IDFn func(idx int) int

// DefaultIDFn is the identity mapping.
func DefaultIDFn(idx int) int {
	return idx
}

// OffsetIDFn returns a mapping that shifts every index by offset.
// Panics if offset < 0.
func OffsetIDFn(offset int) IDFn {
	if offset < 0 {
		panic(fmt.Sprintf("OffsetIDFn: offset must be ≥ 0, got %d", offset))
	}

	return func(idx int) int {
		return idx + offset
	}
}

// PermutationIDFn returns a mapping idx → perm[idx]. Indices beyond the
// permutation map to core.NoVertex (-1), which the store rejects.
// Panics if perm is not a permutation of 0..len(perm)-1.
func PermutationIDFn(perm []int) IDFn {
	seen := make([]bool, len(perm))
	for _, v := range perm {
		if v < 0 || v >= len(perm) || seen[v] {
			panic(fmt.Sprintf("PermutationIDFn: %v is not a permutation", perm))
		}
		seen[v] = true
	}
	p := append([]int(nil), perm...)

	return func(idx int) int {
		if idx < 0 || idx >= len(p) {
			return -1
		}
		return p[idx]
	}
}

// WithOffset places every constructor's vertices starting at offset.
// To shift a single constructor, wrap it with At instead.
func WithOffset(offset int) BuilderOption {
	return WithIDScheme(OffsetIDFn(offset))
}

// WithPermutation relabels local indices through perm.
func WithPermutation(perm []int) BuilderOption {
	return WithIDScheme(PermutationIDFn(perm))
}

// WithDefaultIDs resets the mapping to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}
