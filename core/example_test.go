package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// ExampleGraph builds a small undirected store and walks a neighborhood.
func ExampleGraph() {
	// 1) Three vertices, 0..2.
	g, _ := core.NewGraph(3, core.WithNonNegativeWeights())

	// 2) Two edges; each is visible from both endpoints.
	g.AddEdge(0, 1, 4)
	g.AddEdge(0, 2, 1.5)

	// 3) Neighbors is a lazy sequence in insertion order.
	seq, _ := g.Neighbors(0)
	for v, w := range seq {
		fmt.Printf("0 - %d (%g)\n", v, w)
	}
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// 0 - 1 (4)
	// 0 - 2 (1.5)
	// edges: 2
}
