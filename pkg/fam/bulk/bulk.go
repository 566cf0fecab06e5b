package bulk

import (
	"context"
	"sync"

	"github.com/ib-77/fam3/pkg/fam"
)

const defaultLines = 1

// Map runs stage against every element of s on the given number of worker
// lines and returns the outcomes in input order. Lines below one are treated
// as one. Elements picked up after ctx is done are not processed; they fail
// with ctx.Err() instead.
func Map[In, Out any](ctx context.Context, s fam.Sequence[In],
	stage func(ctx context.Context, in In) fam.Result[Out], lines int) fam.Sequence[fam.Result[Out]] {

	if lines < defaultLines {
		lines = defaultLines
	}

	items := s.All()
	outcomes := make([]fam.Result[Out], len(items))

	jobs := make(chan int)
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					outcomes[i] = fam.Fail[Out](err)
					continue
				}
				outcomes[i] = stage(ctx, items[i])
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return fam.SeqFrom(outcomes)
}

// Try is Map for conventional (Out, error) stages.
func Try[In, Out any](ctx context.Context, s fam.Sequence[In],
	stage func(ctx context.Context, in In) (Out, error), lines int) fam.Sequence[fam.Result[Out]] {

	return Map(ctx, s, func(ctx context.Context, in In) fam.Result[Out] {
		out, err := stage(ctx, in)
		if err != nil {
			return fam.Fail[Out](err)
		}
		return fam.Success(out)
	}, lines)
}
