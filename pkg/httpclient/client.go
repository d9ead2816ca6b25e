package httpclient

import (
	"context"
	"net"
	"net/http"
	"time"
)

const (
	defaultConnectTimeout = 30 * time.Second
	defaultIdleTimeout    = 90 * time.Second
	keepAlivePeriod       = 30 * time.Second
	maxIdleConns          = 100
	tlsHandshakeTimeout   = 10 * time.Second
	expectContinueTimeout = 1 * time.Second
	maxConnsPerHost       = 64
)

type Client struct {
	*http.Client

	userAgent string
}

// NewClient creates a new HTTP client with custom transport settings.
// Connection establishment is bounded by the dialer timeout; body reads
// are bounded only by the caller's context so large transfers are not
// cut off mid-stream.
func NewClient(userAgent string) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   defaultConnectTimeout,
			KeepAlive: keepAlivePeriod,
		}).DialContext,
		MaxIdleConns:          maxIdleConns,
		IdleConnTimeout:       defaultIdleTimeout,
		TLSHandshakeTimeout:   tlsHandshakeTimeout,
		ExpectContinueTimeout: expectContinueTimeout,
		MaxConnsPerHost:       maxConnsPerHost,
	}

	return &Client{
		Client:    &http.Client{Transport: transport},
		userAgent: userAgent,
	}
}

// Get performs a GET request to the specified URL. A non-nil response
// always has a 2xx status; anything else is classified into one of the
// package's sentinel errors. The caller owns the response body.
func (c *Client) Get(ctx context.Context, urlStr string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, ErrRequestCreation
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, ClassifyError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		resp.Body.Close()
		return nil, ClassifyHTTPError(resp.StatusCode)
	}

	return resp, nil
}
