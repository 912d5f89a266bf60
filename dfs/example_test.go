package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
)

// ExampleFindCycle finds the triangle hanging off a tail.
func ExampleFindCycle() {
	g := core.MustGraph(4)
	g.MustAddEdge(0, 1, 1)
	g.MustAddEdge(1, 2, 1)
	g.MustAddEdge(2, 3, 1)
	g.MustAddEdge(3, 1, 1)

	cyc, _ := dfs.FindCycle(g)
	fmt.Println(cyc)
	// Output:
	// [1 2 3 1]
}
