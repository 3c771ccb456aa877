package chainbench

import (
	"context"
	"io"
	"sync"
	"time"

	"go.llib.dev/frameless/pkg/logging"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -destination mock_recorder_test.go -package chainbench_test . Recorder

// Recorder receives every Result as soon as its case is finished.
// Recorders are called one at a time.
type Recorder interface {
	Record(ctx context.Context, r Result) error
}

type Result struct {
	Variant  Variant
	Workload Workload
	Size     int
	Rounds   int
	// Elapsed is the total measured time of all rounds.
	Elapsed time.Duration
	// PerOp is the average time spent on a single element.
	PerOp time.Duration
	// Throughput is the number of elements handled per second.
	Throughput float64
}

func newResult(c Case, rounds int, elapsed time.Duration) Result {
	elapsed = max(elapsed, time.Nanosecond)
	ops := rounds * c.Size
	return Result{
		Variant:    c.Variant,
		Workload:   c.Workload,
		Size:       c.Size,
		Rounds:     rounds,
		Elapsed:    elapsed,
		PerOp:      elapsed / time.Duration(ops),
		Throughput: float64(ops) / elapsed.Seconds(),
	}
}

// Run measures rounds of the case, each on a freshly made list.
func (c Case) Run(ctx context.Context, rounds int) (Result, error) {
	var elapsed time.Duration
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		list, err := NewList[uint64](c.Variant)
		if err != nil {
			return Result{}, err
		}
		start := time.Now()
		if err := c.Workload.Run(list, c.Size); err != nil {
			return Result{}, err
		}
		elapsed += time.Since(start)
	}
	return newResult(c, rounds, elapsed), nil
}

type Runner struct {
	Logger    *logging.Logger
	Recorders []Recorder
}

// Run executes every case of the config and returns the results in the order of Config.Cases.
// The first failing case or Recorder cancels the remaining cases.
func (r Runner) Run(ctx context.Context, c Config) ([]Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var (
		cases   = c.Cases()
		results = make([]Result, len(cases))
		m       sync.Mutex
	)
	r.logger().Info(ctx, "benchmark started",
		logging.Field("cases", len(cases)),
		logging.Field("rounds", c.Rounds),
		logging.Field("parallelism", c.Parallelism))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Parallelism)
	for i, bc := range cases {
		g.Go(func() error {
			res, err := bc.Run(gctx, c.Rounds)
			if err != nil {
				return err
			}
			m.Lock()
			defer m.Unlock()
			results[i] = res
			r.logger().Debug(gctx, "benchmark case finished",
				logging.Field("case", bc.String()),
				logging.Field("per_op", res.PerOp.String()),
				logging.Field("throughput", res.Throughput))
			for _, rec := range r.Recorders {
				if err := rec.Record(gctx, res); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.logger().Error(ctx, "benchmark failed", logging.ErrField(err))
		return nil, err
	}
	r.logger().Info(ctx, "benchmark finished", logging.Field("cases", len(cases)))
	return results, nil
}

var discard = &logging.Logger{Out: io.Discard}

func (r Runner) logger() *logging.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return discard
}
