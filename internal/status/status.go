package status

import "fmt"

// Status represents the lifecycle state of a download task.
type Status int32

const (
	Pending Status = iota
	Active
	Completed
	Failed
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	case Failed:
		return "Failed"
	case Cancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(s))
	}
}
