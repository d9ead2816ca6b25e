package progress_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khushveer007/batchdl/internal/progress"
)

func TestWriter_CountsAndNotifies(t *testing.T) {
	var (
		buf    bytes.Buffer
		events []progress.Progress
	)

	w := progress.NewWriter(&buf, 3, 10, func(p progress.Progress) {
		events = append(events, p)
	})

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = w.Write([]byte("world"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	assert.Equal(t, "helloworld", buf.String())
	assert.Equal(t, int64(10), w.Downloaded())

	require.Len(t, events, 2)
	assert.Equal(t, progress.Progress{TaskIndex: 3, Downloaded: 5, TotalSize: 10}, events[0])
	assert.Equal(t, progress.Progress{TaskIndex: 3, Downloaded: 10, TotalSize: 10}, events[1])
}

func TestWriter_NilCallback(t *testing.T) {
	var buf bytes.Buffer

	w := progress.NewWriter(&buf, 1, -1, nil)

	_, err := w.Write([]byte("data"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), w.Downloaded())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_PropagatesError(t *testing.T) {
	called := false

	w := progress.NewWriter(failingWriter{}, 1, 100, func(progress.Progress) {
		called = true
	})

	_, err := w.Write([]byte("data"))
	assert.Error(t, err)
	assert.False(t, called, "callback should not fire when nothing was written")
	assert.Zero(t, w.Downloaded())
}
