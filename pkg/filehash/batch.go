package filehash

import (
	"context"

	"github.com/majorfi/clipkit/pkg/utils"
	"golang.org/x/sync/errgroup"
)

/**************************************************************************************************
** HashAll hashes paths with at most workers files read at once. Results are returned in the
** order of paths. A file that cannot be read does not stop the batch: its result has an empty
** Hash and Err set. Only cancellation of ctx aborts, in which case ctx.Err() is returned along
** with the results gathered so far; files never reached only carry their Path.
**
** @param ctx - Cancellation context
** @param hasher - Hasher (and cache) to use
** @param paths - Files to fingerprint
** @param workers - Maximum concurrent reads, values below 1 mean 1
** @param onDone - Optional callback invoked after each file, from the worker goroutine
** @return []utils.THashResult - One result per path
** @return error - ctx.Err() if the batch was cancelled
**************************************************************************************************/
func HashAll(ctx context.Context, hasher *Hasher, paths []string, workers int, onDone func(utils.THashResult)) ([]utils.THashResult, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]utils.THashResult, len(paths))
	for i, path := range paths {
		results[i].Path = path
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hash, err := hasher.Hash(path)
			results[i] = utils.THashResult{Path: path, Hash: hash, Err: err}
			if onDone != nil {
				onDone(results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
