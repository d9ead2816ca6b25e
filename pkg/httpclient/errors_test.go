package httpclient_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khushveer007/batchdl/pkg/httpclient"
)

func TestClassifyHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       error
	}{
		{"not found", http.StatusNotFound, httpclient.ErrResourceNotFound},
		{"forbidden", http.StatusForbidden, httpclient.ErrAccessDenied},
		{"unauthorized", http.StatusUnauthorized, httpclient.ErrAuthentication},
		{"gone", http.StatusGone, httpclient.ErrGone},
		{"too many requests", http.StatusTooManyRequests, httpclient.ErrTooManyRequests},
		{"internal server error", http.StatusInternalServerError, httpclient.ErrServerProblem},
		{"bad gateway", http.StatusBadGateway, httpclient.ErrServerProblem},
		{"bad request", http.StatusBadRequest, httpclient.ErrClientRequest},
		{"teapot", http.StatusTeapot, httpclient.ErrClientRequest},
		{"ok", http.StatusOK, nil},
		{"partial content", http.StatusPartialContent, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpclient.ClassifyHTTPError(tt.statusCode))
		})
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"canceled", context.Canceled, context.Canceled},
		{"deadline", context.DeadlineExceeded, httpclient.ErrTimeout},
		{"eof", io.EOF, httpclient.ErrUnexpectedEOF},
		{"unexpected eof", io.ErrUnexpectedEOF, httpclient.ErrUnexpectedEOF},
		{"net timeout", timeoutError{}, httpclient.ErrTimeout},
		{"op error", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, httpclient.ErrNetworkProblem},
		{"plain", errors.New("who knows"), httpclient.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpclient.ClassifyError(tt.err))
		})
	}
}

func TestClassifyError_Wrapped(t *testing.T) {
	err := &net.OpError{Op: "read", Err: timeoutError{}}
	assert.Equal(t, httpclient.ErrTimeout, httpclient.ClassifyError(err))

	canceled := &net.OpError{Op: "dial", Err: context.Canceled}
	assert.Equal(t, context.Canceled, httpclient.ClassifyError(canceled))
}
