// SPDX-License-Identifier: MIT
package route

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors for reconstruction.
var (
	// ErrUnreachable indicates the predecessor walk hit NoVertex before the source.
	ErrUnreachable = errors.New("route: target unreachable from source")

	// ErrMalformedPredecessors indicates the walk did not terminate within
	// len(prev) steps, i.e. prev contains a cycle or out-of-range entries.
	ErrMalformedPredecessors = errors.New("route: malformed predecessor array")

	// ErrNoSuchEdge indicates two consecutive path vertices are not adjacent.
	ErrNoSuchEdge = errors.New("route: consecutive vertices are not adjacent")
)

// Reconstruct returns the vertex sequence source→…→target recorded in prev.
//
// prev[v] is the vertex preceding v on a shortest path, or core.NoVertex.
// The walk starts at target and follows prev until it reaches source.
//
// Errors:
//   - core.ErrInvalidVertex (wrapped): source or target outside [0, len(prev)).
//   - ErrUnreachable: NoVertex was reached before source.
//   - ErrMalformedPredecessors: prev loops or points outside its range.
//
// Complexity: O(len(path)).
func Reconstruct(prev []int, source, target int) ([]int, error) {
	n := len(prev)
	if source < 0 || source >= n {
		return nil, fmt.Errorf("route: source %d: %w", source, core.ErrInvalidVertex)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("route: target %d: %w", target, core.ErrInvalidVertex)
	}

	path := []int{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		if cur == core.NoVertex {
			return nil, fmt.Errorf("route: %d → %d: %w", source, target, ErrUnreachable)
		}
		// a simple path has at most n vertices
		if cur < 0 || cur >= n || len(path) >= n {
			return nil, ErrMalformedPredecessors
		}
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// PathWeight returns the total weight of path in g, taking the lightest of
// any parallel edges between consecutive vertices. A path of one vertex weighs 0.
//
// Errors:
//   - core.ErrInvalidVertex (wrapped): a path vertex is outside the graph.
//   - ErrNoSuchEdge: two consecutive vertices are not adjacent.
func PathWeight(g *core.Graph, path []int) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		seq, err := g.Neighbors(u)
		if err != nil {
			return 0, err
		}
		best := math.Inf(1)
		for x, w := range seq {
			if x == v && w < best {
				best = w
			}
		}
		if math.IsInf(best, 1) {
			if !g.HasVertex(v) {
				return 0, fmt.Errorf("route: vertex %d: %w", v, core.ErrInvalidVertex)
			}
			return 0, fmt.Errorf("route: %d - %d: %w", u, v, ErrNoSuchEdge)
		}
		total += best
	}

	return total, nil
}

// pair is a normalized undirected endpoint pair.
type pair struct{ lo, hi int }

func pairOf(e core.Edge) pair {
	lo, hi := e.Ends()
	return pair{lo, hi}
}

// NonTreeEdges returns the edges of all whose undirected endpoint pair does not
// occur in tree, preserving the order of all.
//
// A parallel copy of a tree edge shares its pair and is therefore not reported:
// the pair is already connected directly by the tree.
//
// Complexity: O(|all| + |tree|).
func NonTreeEdges(all, tree []core.Edge) []core.Edge {
	used := make(map[pair]struct{}, len(tree))
	for _, e := range tree {
		used[pairOf(e)] = struct{}{}
	}

	out := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if _, ok := used[pairOf(e)]; !ok {
			out = append(out, e)
		}
	}

	return out
}

// SortEdges orders edges in place by weight, then lower endpoint, then higher
// endpoint, then ID.
func SortEdges(edges []core.Edge) {
	slices.SortFunc(edges, Compare)
}

// Compare is the reporting order used by SortEdges.
func Compare(a, b core.Edge) int {
	if a.Weight != b.Weight {
		if a.Weight < b.Weight {
			return -1
		}
		return 1
	}
	alo, ahi := a.Ends()
	blo, bhi := b.Ends()
	switch {
	case alo != blo:
		return alo - blo
	case ahi != bhi:
		return ahi - bhi
	default:
		return a.ID - b.ID
	}
}

// Labeled maps each vertex of path through label.
func Labeled(path []int, label func(int) string) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = label(v)
	}

	return out
}
