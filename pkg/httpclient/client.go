package httpclient

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const MaxRedirects = 10

var ErrTooManyRedirects = errors.New("too many redirects")

var _ HTTPClient = (*httpClient)(nil)

type HTTPClient interface {
	Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error)
}

type httpClient struct {
	Client *http.Client
}

// NewHTTPClient returns a client that follows up to MaxRedirects redirects.
// A zero timeout leaves the deadline to the request context.
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &httpClient{Client: &http.Client{
		Timeout:       timeout,
		CheckRedirect: checkRedirect,
	}}
}

func (c *httpClient) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, headers)
	return c.Client.Do(req)
}

func (c *httpClient) setHeaders(req *http.Request, headers map[string]string) {
	if len(headers) == 0 {
		return
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
}

func checkRedirect(_ *http.Request, via []*http.Request) error {
	if len(via) >= MaxRedirects {
		return ErrTooManyRedirects
	}
	return nil
}
