package cli

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/edgelist"
)

// loadNetwork reads cfg.Data, or returns demo when no file is configured.
// gopts configure the store built from the file.
func loadNetwork(ctx context.Context, cfg *config.Config, demo func() *edgelist.Network, gopts ...core.GraphOption) (*edgelist.Network, error) {
	logger := loggerFromContext(ctx)
	if cfg.Data == "" {
		logger.Debug("no data file, using the built-in demo network")
		return demo(), nil
	}

	prog := newProgress(logger)
	nw, err := edgelist.LoadFile(cfg.Data, edgelist.WithGraphOptions(gopts...))
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	prog.done(fmt.Sprintf("Loaded %d stations, %d connections from %s",
		nw.Labels.Len(), nw.Graph.EdgeCount(), cfg.Data))

	return nw, nil
}
