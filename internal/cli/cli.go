package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/config"
)

var version = "dev"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) { version = v }

// Execute runs the lvroute CLI under ctx.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Exposed for tests.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "lvroute",
		Short:         "lvroute finds shortest routes and spanning networks",
		Long:          `lvroute loads a weighted, undirected network from a CSV edge list and answers shortest-route and minimum-spanning-forest queries over it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().String("config", "", "config file (default ./"+config.DefaultFile+" if present)")

	root.AddCommand(newRouteCmd())
	root.AddCommand(newMSTCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newVerifyCmd())

	return root
}

// loadConfig resolves the configuration for cmd from file, env and its flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	loggerFromContext(cmd.Context()).Debug("configuration", "config", cfgSource(path), "workers", cfg.Workers)

	return cfg, nil
}

func cfgSource(path string) string {
	if path != "" {
		return path
	}
	if _, err := os.Stat(config.DefaultFile); err == nil {
		return config.DefaultFile
	}
	return fmt.Sprintf("defaults (no %s)", config.DefaultFile)
}
