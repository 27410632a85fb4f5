package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	v1middleware "github.com/Behyna/cc5mock/internal/api/v1/middleware"
	"github.com/Behyna/cc5mock/internal/constants"
	middleware "github.com/Behyna/cc5mock/internal/error"
	"github.com/Behyna/cc5mock/internal/metrics"
	"github.com/Behyna/cc5mock/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(m *metrics.Metrics) *fiber.App {
	logger := zap.NewNop()
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(logger)})
	app.Use(
		v1middleware.TrackID(logger),
		v1middleware.HTTPMetricsMiddleware(m, logger),
		recover.New(),
	)
	return app
}

func TestErrorHandler_Panic(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		contentType string
		contains    string
	}{
		{"xml", constants.FormatXML, constants.ContentTypeXML, "<Response>Error</Response>"},
		{"html", constants.FormatHTML, constants.ContentTypeHTML, constants.ErrCodeInternalError},
		{"json", constants.FormatJSON, fiber.MIMEApplicationJSON, `"code":"INTERNAL_ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.NewMetrics(metrics.NewRegistry())
			app := newApp(m)
			app.Post("/boom", v1middleware.ResponseFormat(tt.format), func(c *fiber.Ctx) error {
				panic("boom")
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/boom", nil), -1)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, tt.contentType, resp.Header.Get(fiber.HeaderContentType))
			assert.Contains(t, string(body), tt.contains)
			assert.Equal(t, float64(1),
				testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/boom", "500")))
		})
	}
}

func TestErrorHandler_ServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		contains       string
	}{
		{
			name:           "known code",
			err:            service.NewServiceError(constants.ErrCodeNoMockMatched, service.ErrNoMockMatched),
			expectedStatus: http.StatusNotFound,
			contains:       "<ProcReturnCode>99</ProcReturnCode>",
		},
		{
			name:           "unknown code",
			err:            service.NewServiceError("SOMETHING", errors.New("odd")),
			expectedStatus: http.StatusInternalServerError,
			contains:       "<ErrMsg>Internal server error</ErrMsg>",
		},
		{
			name:           "plain error",
			err:            errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
			contains:       "<Response>Error</Response>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(metrics.NewMetrics(metrics.NewRegistry()))
			app.Post("/pay", v1middleware.ResponseFormat(constants.FormatXML), func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/pay", nil), -1)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Contains(t, string(body), tt.contains)
		})
	}
}
