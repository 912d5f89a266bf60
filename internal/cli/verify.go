package cli

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/edgelist"
	"github.com/katalvlaran/lvroute/oracle"
)

// ErrVerifyFailed is returned when the engines disagree with gonum.
var ErrVerifyFailed = errors.New("verify: results differ from gonum")

// maxMismatchRows caps the mismatch table.
const maxMismatchRows = 10

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the engines against gonum",
		Long: `Run Dijkstra from every station, Kruskal and Prim on the network, and
compare distances, spanning weights and component counts with gonum.
--random N checks a random graph of N vertices instead of a data file.`,
		Example: `  lvroute verify --data london.csv
  lvroute verify --random 500 --probability 0.02 --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			g, err := verifyGraph(cmd, cfg)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			rep, err := oracle.Check(cmd.Context(), g, cfg.Workers)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Checked %d sources", rep.Sources))

			return printReport(cmd, rep)
		},
	}

	def := config.Defaults()
	cmd.Flags().String("data", "", "CSV edge list (Station1,Station2,Time)")
	cmd.Flags().Int("random", 0, "check a random graph with this many vertices")
	cmd.Flags().Float64("probability", def["probability"].(float64), "edge probability for --random")
	cmd.Flags().Int("min-weight", def["min-weight"].(int), "smallest edge weight for --random")
	cmd.Flags().Int("max-weight", def["max-weight"].(int), "largest edge weight for --random")
	cmd.Flags().Int64("seed", def["seed"].(int64), "random seed for --random")
	cmd.Flags().Int("workers", def["workers"].(int), "concurrent shortest-path queries")

	return cmd
}

func verifyGraph(cmd *cobra.Command, cfg *config.Config) (*core.Graph, error) {
	if cfg.Random == 0 {
		nw, err := loadNetwork(cmd.Context(), cfg, edgelist.Stations, core.WithNonNegativeWeights())
		if err != nil {
			return nil, err
		}
		return nw.Graph, nil
	}

	return builder.BuildGraph(cfg.Random,
		[]core.GraphOption{core.WithNonNegativeWeights()},
		[]builder.BuilderOption{
			builder.WithRand(rand.New(rand.NewSource(cfg.Seed))),
			builder.WithUniformIntWeight(cfg.MinWeight, cfg.MaxWeight),
		},
		builder.RandomSparse(cfg.Random, cfg.Probability))
}

func printReport(cmd *cobra.Command, rep *oracle.Report) error {
	w := cmd.OutOrStdout()
	printTitle(w, "Verification against gonum")
	printKeyValue(w, "Vertices", fmt.Sprint(rep.Vertices))
	printKeyValue(w, "Edges", fmt.Sprint(rep.Edges))
	printTable(w, []string{"Check", "lvroute", "gonum"}, [][]string{
		{"distance pairs", fmt.Sprintf("%d differ", len(rep.Distances)), fmt.Sprint(rep.Sources * rep.Vertices)},
		{"kruskal weight", formatWeight(rep.KruskalWeight), formatWeight(rep.GonumWeight)},
		{"prim weight", formatWeight(rep.PrimWeight), formatWeight(rep.GonumWeight)},
		{"forests acyclic", fmt.Sprint(rep.Acyclic), "true"},
		{"components", fmt.Sprintf("%d / %d / %d", rep.Components, rep.KruskalComponents, rep.PrimComponents), fmt.Sprint(rep.GonumComponents)},
	})

	if rep.OK() {
		printSuccess(w, "all checks agree")
		return nil
	}

	if n := len(rep.Distances); n > 0 {
		rows := make([][]string, 0, min(n, maxMismatchRows))
		for _, m := range rep.Distances[:min(n, maxMismatchRows)] {
			rows = append(rows, []string{fmt.Sprint(m.Source), fmt.Sprint(m.Target), formatWeight(m.Got), formatWeight(m.Want)})
		}
		printTable(w, []string{"Source", "Target", "lvroute", "gonum"}, rows)
	}
	printFailure(w, "%d distance mismatches", len(rep.Distances))

	return ErrVerifyFailed
}
