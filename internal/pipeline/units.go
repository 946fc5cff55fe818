package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunUnits runs pipe over every unit with at most workers units in flight.
// Each unit owns its tree and symbol tables, so units never share state.
// A failed unit does not stop the others; its errors stay on its context.
// The returned error is only non-nil when ctx was cancelled.
func RunUnits(ctx context.Context, pipe *Pipeline, units []*PipelineContext, workers int) ([]*PipelineContext, error) {
	results := make([]*PipelineContext, len(units))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, unit := range units {
		i, unit := i, unit // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = unit
				return err
			}
			unit.Context = gctx
			results[i] = pipe.Run(unit)
			return nil
		})
	}
	err := g.Wait()
	return results, err
}
