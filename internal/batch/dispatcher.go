package batch

import (
	"context"
	"errors"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/khushveer007/batchdl/internal/logger"
	"github.com/khushveer007/batchdl/internal/progress"
	"github.com/khushveer007/batchdl/internal/status"
)

// ErrInvalidLimit is returned when the concurrency limit is not positive.
var ErrInvalidLimit = errors.New("concurrency limit must be positive")

// Fetcher downloads one URL to a destination file, reporting progress
// through the callback. This allows for mocking in tests.
type Fetcher interface {
	Download(ctx context.Context, url, dest string, taskIndex int, callback progress.Callback) (int64, error)
}

// Dispatcher fans a batch of tasks out across a bounded worker pool.
type Dispatcher struct {
	fetcher Fetcher
	limit   int
}

func NewDispatcher(fetcher Fetcher, limit int) (*Dispatcher, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	return &Dispatcher{
		fetcher: fetcher,
		limit:   limit,
	}, nil
}

// Run downloads every task and returns once all workers have finished.
// At most the configured limit of tasks is in flight at any instant.
// A task's failure is recorded in its outcome and never aborts sibling
// tasks; only cancellation of ctx stops the batch early, and even then
// Run waits for in-flight workers to wind down before returning.
func (d *Dispatcher) Run(ctx context.Context, tasks []Task) Result {
	start := time.Now()
	outcomes := make([]Outcome, len(tasks))

	if len(tasks) == 0 {
		return Result{Elapsed: time.Since(start), Outcomes: outcomes}
	}

	var g errgroup.Group

	sem := make(chan struct{}, d.limit)

	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				outcomes[i] = Outcome{Task: task, Status: status.Cancelled, Err: ctx.Err()}
				return nil
			}

			outcomes[i] = d.runTask(ctx, task)

			return nil
		})
	}

	// Workers never return an error; the join is what matters here.
	_ = g.Wait()

	result := Result{Elapsed: time.Since(start), Outcomes: outcomes}

	logger.Infof("batch finished: %d succeeded, %d failed, elapsed %s",
		result.Succeeded(), result.Failed(), result.Elapsed.Round(time.Millisecond))

	return result
}

func (d *Dispatcher) runTask(ctx context.Context, task Task) Outcome {
	logger.Infof("task %d [%s]: downloading %s -> %s", task.Index, task.ID, task.URL, task.Dest)

	taskStart := time.Now()

	bytes, err := d.fetcher.Download(ctx, task.URL, task.Dest, task.Index, logProgress)

	outcome := Outcome{
		Task:     task,
		Bytes:    bytes,
		Duration: time.Since(taskStart),
	}

	switch {
	case err == nil:
		outcome.Status = status.Completed

		logger.Infof("task %d [%s]: completed %s in %s",
			task.Index, task.ID, humanize.Bytes(uint64(bytes)), outcome.Duration.Round(time.Millisecond))
	case errors.Is(err, context.Canceled):
		outcome.Status = status.Cancelled
		outcome.Err = err

		logger.Warnf("task %d [%s]: cancelled after %s", task.Index, task.ID, humanize.Bytes(uint64(bytes)))
	default:
		outcome.Status = status.Failed
		outcome.Err = err

		logger.Errorf("task %d [%s]: %s failed: %v", task.Index, task.ID, task.URL, err)
	}

	return outcome
}

func logProgress(p progress.Progress) {
	if p.TotalSize > 0 {
		logger.Debugf("task %d: %s of %s", p.TaskIndex,
			humanize.Bytes(uint64(p.Downloaded)), humanize.Bytes(uint64(p.TotalSize)))

		return
	}

	logger.Debugf("task %d: %s of unknown size", p.TaskIndex, humanize.Bytes(uint64(p.Downloaded)))
}
