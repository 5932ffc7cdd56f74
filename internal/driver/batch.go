// Package driver runs matching requests on behalf of the CLI: batches
// of desired tags matched in parallel against one supported list, with
// finished batches cached on disk.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"langtag"
)

// MatchResult is the outcome for one desired tag in a batch.
type MatchResult struct {
	Desired  string
	Tag      string
	Distance int
}

// MatchAll matches every desired tag against the supported list,
// in parallel. jobs <= 0 means one worker per CPU. Results keep the
// order of the desired tags. The first malformed tag aborts the whole
// batch.
func MatchAll(ctx context.Context, desired, supported []string, maxDistance, jobs int) ([]MatchResult, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// Indices are unique per goroutine, no mutex needed.
	results := make([]MatchResult, len(desired))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(desired), 1)))

	for i, tag := range desired {
		i, tag := i, tag
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			best, dist, err := langtag.ClosestMatch(tag, supported, maxDistance)
			if err != nil {
				return err
			}
			results[i] = MatchResult{Desired: tag, Tag: best, Distance: dist}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MatchAllCached is MatchAll behind the disk cache: a batch that ran
// before is answered from disk without touching the matcher. cache may
// be nil, which disables caching entirely.
func MatchAllCached(ctx context.Context, cache *DiskCache, desired, supported []string, maxDistance, jobs int) ([]MatchResult, bool, error) {
	key := RequestKey(desired, supported, maxDistance)

	var payload DiskPayload
	if hit, err := cache.Get(key, &payload); err == nil && hit && len(payload.Tags) == len(desired) {
		results := make([]MatchResult, len(desired))
		for i, tag := range desired {
			results[i] = MatchResult{Desired: tag, Tag: payload.Tags[i], Distance: payload.Distances[i]}
		}
		return results, true, nil
	}

	results, err := MatchAll(ctx, desired, supported, maxDistance, jobs)
	if err != nil {
		return nil, false, err
	}

	payload = DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Desired:     desired,
		Supported:   supported,
		MaxDistance: maxDistance,
		Tags:        make([]string, len(results)),
		Distances:   make([]int, len(results)),
	}
	for i, r := range results {
		payload.Tags[i] = r.Tag
		payload.Distances[i] = r.Distance
	}
	// A failed write only costs the next run a recomputation.
	_ = cache.Put(key, &payload)

	return results, false, nil
}
