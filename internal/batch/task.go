package batch

import "github.com/google/uuid"

// Task is one URL-to-file unit of work. Tasks are created at batch
// start and never mutated.
type Task struct {
	// Index is the 1-based position of the task in the batch.
	Index int
	ID    uuid.UUID
	URL   string
	Dest  string
}

func NewTask(index int, url, dest string) Task {
	return Task{
		Index: index,
		ID:    uuid.New(),
		URL:   url,
		Dest:  dest,
	}
}
