// SPDX-License-Identifier: MIT
package dijkstra

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvroute/core"
)

// Many runs one independent Dijkstra query per source over the same store,
// at most workers at a time (workers < 1 means GOMAXPROCS).
//
// Each query owns its arrays and frontier; the store is only read. The
// returned slice is indexed like sources. The first failing query cancels
// the scheduling of the rest and its error is returned; so is ctx's error
// if ctx is done before every query has run.
func Many(ctx context.Context, g *core.Graph, sources []int, workers int, opts ...Option) ([]*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]*Result, len(sources))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, s := range sources {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Dijkstra(g, s, opts...)
			if err != nil {
				return fmt.Errorf("source %d: %w", s, err)
			}
			out[i] = res

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
