package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/edgelist"
	"github.com/katalvlaran/lvroute/prim_kruskal"
	"github.com/katalvlaran/lvroute/route"
)

func newMSTCmd() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning forest and closable connections",
		Long: `Compute the minimum spanning forest of the network and list the
connections outside it, i.e. the ones that could be closed while keeping
every station reachable. Kruskal and Prim totals are both reported.`,
		Example: `  lvroute mst --data london.csv --method prim --root "Finsbury Park"
  lvroute mst --demo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if demo {
				cfg.Data = ""
			}
			nw, err := loadNetwork(cmd.Context(), cfg, edgelist.Closures)
			if err != nil {
				return err
			}

			return runMST(cmd, nw, cfg)
		},
	}

	cmd.Flags().String("data", "", "CSV edge list (Station1,Station2,Time)")
	cmd.Flags().String("method", config.MethodKruskal, "spanning forest method: kruskal or prim")
	cmd.Flags().String("root", "", "start station for prim (default: first station)")
	cmd.Flags().BoolVar(&demo, "demo", false, "use the built-in closable-edge network")

	return cmd
}

func runMST(cmd *cobra.Command, nw *edgelist.Network, cfg *config.Config) error {
	root := 0
	if cfg.Root != "" {
		r, err := nw.Vertex(cfg.Root)
		if err != nil {
			return err
		}
		root = r
	}
	if nw.Graph.VertexCount() == 0 {
		return fmt.Errorf("mst: network has no stations")
	}

	forest, err := prim_kruskal.Compute(nw.Graph,
		prim_kruskal.WithMethod(cfg.Method), prim_kruskal.WithRoot(root))
	if err != nil {
		return err
	}
	kruskal, err := prim_kruskal.Kruskal(nw.Graph)
	if err != nil {
		return err
	}
	prim, err := prim_kruskal.Prim(nw.Graph, root)
	if err != nil {
		return err
	}

	tree := append([]core.Edge(nil), forest.Edges...)
	route.SortEdges(tree)
	closable := route.NonTreeEdges(nw.Graph.Edges(), forest.Edges)
	route.SortEdges(closable)

	w := cmd.OutOrStdout()
	printTitle(w, fmt.Sprintf("Minimum spanning forest (%s)", cfg.Method))
	printTable(w, []string{"From", "To", "Weight"}, edgeRows(nw, tree))
	printKeyValue(w, "Stations", fmt.Sprint(forest.Vertices))
	printKeyValue(w, "Components", fmt.Sprint(forest.Components))
	printKeyValue(w, "Kruskal", formatWeight(kruskal.Weight))
	printKeyValue(w, "Prim", formatWeight(prim.Weight))

	printTitle(w, fmt.Sprintf("Closable connections (%d)", len(closable)))
	if len(closable) > 0 {
		printTable(w, []string{"From", "To", "Weight"}, edgeRows(nw, closable))
	}

	return nil
}

func edgeRows(nw *edgelist.Network, edges []core.Edge) [][]string {
	rows := make([][]string, len(edges))
	for i, e := range edges {
		le := nw.Label(e)
		rows[i] = []string{le.A, le.B, formatWeight(le.Weight)}
	}

	return rows
}
