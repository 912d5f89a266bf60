package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/edgelist"
	"github.com/katalvlaran/lvroute/route"
)

func newRouteCmd() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Shortest route between two stations",
		Long: `Run Dijkstra from --from over the network in --data and print the
cheapest route to --to. Without a data file the five-station demo network
A..E is used, from A to D unless --from/--to are given.`,
		Example: `  lvroute route --data london.csv --from "Finsbury Park" --to Cockfosters
  lvroute route --demo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if demo {
				cfg.Data = ""
			}
			from, to := cfg.From, cfg.To
			if cfg.Data == "" {
				if !cmd.Flags().Changed("from") {
					from = "A"
				}
				if !cmd.Flags().Changed("to") {
					to = "D"
				}
			}

			nw, err := loadNetwork(cmd.Context(), cfg, edgelist.Stations, core.WithNonNegativeWeights())
			if err != nil {
				return err
			}

			return runRoute(cmd, nw, from, to)
		},
	}

	cmd.Flags().String("data", "", "CSV edge list (Station1,Station2,Time)")
	cmd.Flags().String("from", "", "start station")
	cmd.Flags().String("to", "", "destination station")
	cmd.Flags().BoolVar(&demo, "demo", false, "use the built-in five-station network")

	return cmd
}

func runRoute(cmd *cobra.Command, nw *edgelist.Network, from, to string) error {
	s, err := nw.Vertex(from)
	if err != nil {
		return err
	}
	t, err := nw.Vertex(to)
	if err != nil {
		return err
	}

	t0 := time.Now()
	res, err := dijkstra.Dijkstra(nw.Graph, s)
	elapsed := time.Since(t0)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("dijkstra finished", "source", from, "elapsed", elapsed)

	path, err := res.PathTo(t)
	if err != nil {
		return fmt.Errorf("%s to %s: %w", from, to, err)
	}

	w := cmd.OutOrStdout()
	printTitle(w, "Shortest route")
	printKeyValue(w, "Start", from)
	printKeyValue(w, "Destination", to)
	printKeyValue(w, "Total weight", formatWeight(res.Dist[t]))
	printKeyValue(w, "Route", strings.Join(route.Labeled(path, nw.Labels.Func()), " -> "))
	printKeyValue(w, "Stops", fmt.Sprint(len(path)))
	printKeyValue(w, "Runtime", fmt.Sprintf("%.7f seconds", elapsed.Seconds()))

	return nil
}
