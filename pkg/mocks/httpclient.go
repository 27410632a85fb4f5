package mocks

import (
	"context"
	"net/http"

	"github.com/Behyna/cc5mock/pkg/httpclient"
	"github.com/stretchr/testify/mock"
)

var _ httpclient.HTTPClient = (*HTTPClient)(nil)

// HTTPClient records merchant callback GETs.
type HTTPClient struct {
	mock.Mock
}

func (m *HTTPClient) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	args := m.Called(ctx, url, headers)

	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}
