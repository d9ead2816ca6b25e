package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/khushveer007/batchdl/internal/filesystem"
	"github.com/khushveer007/batchdl/internal/logger"
	"github.com/khushveer007/batchdl/internal/progress"
	"github.com/khushveer007/batchdl/pkg/httpclient"
)

var (
	ErrFileCreateFailed = errors.New("file create failed")
	ErrFileWriteFailed  = errors.New("file write failed")
)

const copyBufferSize = 32 * 1024

// Fetcher transfers single URLs to destination files.
type Fetcher struct {
	client *httpclient.Client
	fs     *filesystem.OSFileSystem
}

func New(client *httpclient.Client) *Fetcher {
	return &Fetcher{
		client: client,
		fs:     filesystem.NewOSFileSystem(),
	}
}

// Download fetches url into dest, invoking callback as bytes arrive.
// It returns the number of bytes written. A partial destination file is
// removed on failure.
func (f *Fetcher) Download(ctx context.Context, url, dest string, taskIndex int, callback progress.Callback) (int64, error) {
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		return 0, err
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warnf("failed to close response body for %s: %v", url, err)
		}
	}()

	if exists, existsErr := f.fs.FileExists(dest); existsErr == nil && exists {
		logger.Debugf("task %d: overwriting existing file %s", taskIndex, dest)
	}

	file, err := f.fs.CreateFile(dest)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFileCreateFailed, err)
	}

	pw := progress.NewWriter(file, taskIndex, resp.ContentLength, callback)

	copyErr := f.copyLoop(ctx, pw, resp.Body)

	if closeErr := file.Close(); closeErr != nil && copyErr == nil {
		copyErr = fmt.Errorf("%w: %w", ErrFileWriteFailed, closeErr)
	}

	if copyErr != nil {
		if removeErr := f.fs.DeleteFile(dest); removeErr != nil {
			logger.Warnf("failed to remove partial file %s: %v", dest, removeErr)
		}

		return pw.Downloaded(), copyErr
	}

	return pw.Downloaded(), nil
}

// copyLoop copies body into dst with a bounded buffer, checking for
// cancellation between reads.
func (f *Fetcher) copyLoop(ctx context.Context, dst io.Writer, body io.Reader) error {
	buffer := make([]byte, copyBufferSize)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, readErr := body.Read(buffer)
		if n > 0 {
			if _, writeErr := dst.Write(buffer[:n]); writeErr != nil {
				return fmt.Errorf("%w: %w", ErrFileWriteFailed, writeErr)
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}

			if errors.Is(readErr, context.Canceled) || errors.Is(readErr, context.DeadlineExceeded) {
				return readErr
			}

			return httpclient.ClassifyError(readErr)
		}
	}
}
