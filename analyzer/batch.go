package analyzer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fenugrec/nisrom-go/romfile"
	"github.com/fenugrec/nisrom-go/romtype"
)

// BatchItem is one image to analyze as part of a batch.
type BatchItem struct {
	Filename string
	Buf      []byte
}

// BatchResult is one image's outcome from AnalyzeAll. RomFile is non-nil
// whenever Err is nil. Err is either Analyze's *BoundsError or, if the
// batch was cancelled before this item ran, the context's error; RomFile
// is nil in both cases.
type BatchResult struct {
	Filename string
	RomFile  *romfile.RomFile
	Err      error
}

// AnalyzeAll runs Analyze over every item concurrently, bounded to
// concurrency simultaneous analyses (concurrency <= 0 defaults to 4).
// Analyzing one image never mutates another's input, so this is safe
// purely because each call gets its own buffer and its own RomFile.
//
// A per-image failure is recorded in that item's BatchResult.Err and does
// not cancel the rest of the batch; AnalyzeAll's own returned error is
// only non-nil if ctx is cancelled.
func AnalyzeAll(ctx context.Context, items []BatchItem, catalog []romtype.FidType, concurrency int, opts ...Option) ([]BatchResult, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]BatchResult, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = BatchResult{Filename: item.Filename, Err: err}
				return err
			}
			rf, err := Analyze(item.Buf, item.Filename, catalog, opts...)
			results[i] = BatchResult{Filename: item.Filename, RomFile: rf, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
