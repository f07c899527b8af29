// Package exec evaluates an expression over the partitions of a dataset
// with a pool of workers.
package exec

import (
	"context"
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/brimdata/frame/pkg/resource"
	"github.com/brimdata/frame/runtime/vam/expr"
	"github.com/brimdata/frame/vector"
	"github.com/paulbellamy/ratecounter"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// PlanFunc builds the expression evaluated on each partition.  A Runner
// calls it once per worker so that no two workers share a node.  Since the
// nodes built by a udf.Constructor share state, PlanFunc should register
// its functions anew on each call, passing w.Allocator with
// udf.WithAllocator so the run's memory limit applies.
type PlanFunc func(w Worker) (expr.Evaluator, error)

// Worker is what a PlanFunc is given to build one worker's plan.
type Worker struct {
	ID        int
	Allocator memory.Allocator
	Logger    *zap.Logger
}

// Result is the outcome of evaluating one partition.
type Result struct {
	Partition int
	Vector    vector.Any
	Err       error
}

type Runner struct {
	conf   Config
	plan   PlanFunc
	logger *zap.Logger
	rate   *ratecounter.RateCounter
}

func NewRunner(conf Config, plan PlanFunc, logger *zap.Logger) (*Runner, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		conf:   conf,
		plan:   plan,
		logger: logger,
		rate:   ratecounter.NewRateCounter(time.Minute),
	}, nil
}

// Rate returns the number of partitions evaluated in the last minute.
func (r *Runner) Rate() int64 {
	return r.rate.Rate()
}

func (r *Runner) allocator() memory.Allocator {
	if limit := r.conf.maxMemory(); limit > 0 {
		return newLimitAllocator(memory.DefaultAllocator, limit)
	}
	return memory.DefaultAllocator
}

// Run evaluates the plan on every partition and returns one Result per
// partition in partition order.  Cancellation of ctx is noticed between
// partitions.  With the Fail policy, Run returns the first error.  With
// the Isolate policy, Run returns the partition errors combined.
func (r *Runner) Run(ctx context.Context, partitions []vector.Any) ([]Result, error) {
	results := make([]Result, len(partitions))
	for k := range results {
		results[k].Partition = k
	}
	if len(partitions) == 0 {
		return results, nil
	}
	cpus := int64(r.conf.cpus())
	sem := semaphore.NewWeighted(cpus)
	mem := r.allocator()
	next := make(chan int)
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer close(next)
		for k := range partitions {
			select {
			case next <- k:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for worker := range min(r.conf.workers(), len(partitions)) {
		logger := r.logger.With(zap.Int("worker", worker))
		group.Go(func() error {
			e, err := r.plan(Worker{ID: worker, Allocator: mem, Logger: logger})
			if err != nil {
				return fmt.Errorf("worker %d: building plan: %w", worker, err)
			}
			weight := r.weight(e)
			if weight > cpus {
				logger.Warn("plan requests more CPUs than available", zap.Int64("num_cpus", weight), zap.Int64("cpus", cpus))
				weight = cpus
			}
			for k := range next {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := sem.Acquire(ctx, weight); err != nil {
					return err
				}
				vec, err := e.Eval(partitions[k])
				sem.Release(weight)
				r.rate.Incr(1)
				results[k].Vector, results[k].Err = vec, err
				if err == nil {
					continue
				}
				logger.Warn("partition failed", zap.Int("partition", k), zap.Error(err))
				if r.conf.policy() == Fail {
					return fmt.Errorf("partition %d: %w", k, err)
				}
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}
	r.logger.Debug("run completed", zap.Int("partitions", len(partitions)), zap.Int64("partitions_per_minute", r.rate.Rate()))
	var errs error
	for _, res := range results {
		if res.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("partition %d: %w", res.Partition, res.Err))
		}
	}
	return results, errs
}

// weight returns the number of CPUs to hold while evaluating e, which is
// the largest request of any function in e.  Functions without a request
// get the configured default, and an unset default counts as one CPU.
func (r *Runner) weight(e expr.Evaluator) int64 {
	var req resource.Request
	expr.Walk(e, func(e expr.Evaluator) bool {
		if u, ok := e.(*expr.UDF); ok {
			req = resource.Max(req, u.Resources().Merge(r.conf.DefaultResources))
		}
		return true
	})
	if n, ok := req.NumCPUs(); ok {
		return int64(n)
	}
	if n, ok := r.conf.DefaultResources.NumCPUs(); ok {
		return int64(n)
	}
	return 1
}
