// SPDX-License-Identifier: MIT
package edgelist

import "github.com/katalvlaran/lvroute/core"

// StationLabels are the five stations of the built-in demo networks.
var StationLabels = []string{"A", "B", "C", "D", "E"}

// Stations returns the five-station demo network used by `lvroute route --demo`:
// A-B 4, A-C 2, B-C 1, B-D 5, C-D 8, C-E 10, D-E 2.
// The store is declared for shortest-path use.
func Stations() *Network {
	return mustFixture([]LabeledEdge{
		{A: "A", B: "B", Weight: 4},
		{A: "A", B: "C", Weight: 2},
		{A: "B", B: "C", Weight: 1},
		{A: "B", B: "D", Weight: 5},
		{A: "C", B: "D", Weight: 8},
		{A: "C", B: "E", Weight: 10},
		{A: "D", B: "E", Weight: 2},
	})
}

// Closures returns the demo network for closable-edge reporting:
// A-B 4, A-C 3, B-C 1, B-D 2, C-E 5, D-E 3.
func Closures() *Network {
	return mustFixture([]LabeledEdge{
		{A: "A", B: "B", Weight: 4},
		{A: "A", B: "C", Weight: 3},
		{A: "B", B: "C", Weight: 1},
		{A: "B", B: "D", Weight: 2},
		{A: "C", B: "E", Weight: 5},
		{A: "D", B: "E", Weight: 3},
	})
}

func mustFixture(edges []LabeledEdge) *Network {
	nw, err := FromEdges(StationLabels, edges, WithGraphOptions(core.WithNonNegativeWeights()))
	if err != nil {
		panic(err)
	}

	return nw
}
