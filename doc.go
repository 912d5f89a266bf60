// Package lvroute is an in-memory engine for shortest routes and minimum
// spanning networks over weighted, undirected graphs.
//
// 🚀 What is lvroute?
//
//	A small, thread-safe library plus a CLI that brings together:
//		• Core store: fixed vertex set 0..n-1, weighted edges, lazy neighbor sequences
//		• Priority frontier: indexed min-heap with decrease-key
//		• Shortest paths: Dijkstra, single and many sources
//		• Minimum spanning forests: Kruskal, Prim
//		• Path reconstruction and closable-edge reporting
//		• CSV edge lists with alphabetical station numbering
//
// ✨ Why lvroute?
//
//   - Deterministic – ties broken by vertex and edge ID, never by map order
//   - Concurrent reads – one immutable store serves many queries at once
//   - Cross-checked – every engine is compared against gonum by `lvroute verify`
//
// Packages:
//
//	core/          - Graph store, Edge and Arc types, sentinel errors
//	frontier/      - priority frontier used by Dijkstra and Prim
//	dijkstra/      - single-source shortest paths, Many for concurrent queries
//	prim_kruskal/  - spanning forests and the DisjointSet behind Kruskal
//	route/         - predecessor walk, path weight, non-tree edges
//	bfs/           - hop-order traversal and connected components
//	dfs/           - cycle detection, forest checks
//	builder/       - deterministic graph generators
//	edgelist/      - CSV loader and label table
//	oracle/        - gonum cross-check
//	config/        - defaults, TOML, env and flag configuration
//	cmd/lvroute/   - the command-line tool
//
// Quick ASCII example (the built-in demo network):
//
//	    A──4──B
//	    │    ╱│
//	    2   1 5
//	    │ ╱   │
//	    C──8──D
//	     ╲    │
//	     10   2
//	       ╲  │
//	        ╲ │
//	          E
//
//	lvroute route --demo   →   A -> C -> B -> D, total 8
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
package lvroute
