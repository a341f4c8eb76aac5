package codegen

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// CompileBatch compiles several schema files with at most maxWorkers
// compilations in flight. Schemas are independent of each other, so order
// within the batch does not matter; results line up with reqs by index.
// Partial results are returned even when some compilations fail.
func CompileBatch(ctx context.Context, reqs []*Request, maxWorkers int) ([]*Result, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("no schema files to compile")
	}
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(maxWorkers)

	results := make([]*Result, len(reqs))
	var mu sync.Mutex

	for i, req := range reqs {
		i, req := i, req
		eg.Go(func() error {
			result, err := Compile(req)
			if err != nil {
				return fmt.Errorf("%s: %w", req.SchemaPath, err)
			}

			mu.Lock()
			results[i] = result
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
