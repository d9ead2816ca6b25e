package progress

import "io"

// Progress is a progress update for one task's transfer. TotalSize is
// zero or negative when the server did not report a content length.
type Progress struct {
	TaskIndex  int
	Downloaded int64
	TotalSize  int64
}

// Callback is invoked as bytes arrive. Callbacks run on the worker
// goroutine performing the transfer and must not block.
type Callback func(Progress)

// Writer wraps an io.Writer, counting bytes and firing the callback
// after every write.
type Writer struct {
	dst        io.Writer
	taskIndex  int
	totalSize  int64
	downloaded int64
	callback   Callback
}

func NewWriter(dst io.Writer, taskIndex int, totalSize int64, callback Callback) *Writer {
	return &Writer{
		dst:       dst,
		taskIndex: taskIndex,
		totalSize: totalSize,
		callback:  callback,
	}
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.dst.Write(p)
	if n > 0 {
		w.downloaded += int64(n)

		if w.callback != nil {
			w.callback(Progress{
				TaskIndex:  w.taskIndex,
				Downloaded: w.downloaded,
				TotalSize:  w.totalSize,
			})
		}
	}

	return n, err
}

// Downloaded reports the total bytes written so far.
func (w *Writer) Downloaded() int64 {
	return w.downloaded
}
