package batch

import (
	"time"

	"github.com/khushveer007/batchdl/internal/status"
)

// Outcome records how a single task ended.
type Outcome struct {
	Task     Task
	Status   status.Status
	Err      error
	Bytes    int64
	Duration time.Duration
}

// Result aggregates the outcomes of one batch run.
type Result struct {
	Elapsed  time.Duration
	Outcomes []Outcome
}

// Succeeded counts tasks that completed.
func (r Result) Succeeded() int {
	return r.count(status.Completed)
}

// Failed counts tasks that failed or were cancelled before completing.
func (r Result) Failed() int {
	return r.count(status.Failed) + r.count(status.Cancelled)
}

func (r Result) count(s status.Status) int {
	n := 0

	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}

	return n
}
