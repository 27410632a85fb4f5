package api

import (
	"github.com/Behyna/cc5mock/internal/api/v1/middleware"
	"github.com/Behyna/cc5mock/internal/config"
	errmiddleware "github.com/Behyna/cc5mock/internal/error"
	"github.com/Behyna/cc5mock/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewFiberApp builds the fiber app with the shared middleware chain. Panics
// are recovered inside the metrics middleware so they are counted as 500s.
// Multipart bodies are parsed by the 3DS handler so failures render as HTML.
func NewFiberApp(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:                      cfg.App.Name,
		ReadTimeout:                  cfg.API.ReadTimeout,
		WriteTimeout:                 cfg.API.WriteTimeout,
		DisableStartupMessage:        true,
		DisablePreParseMultipartForm: true,
		ErrorHandler:                 errmiddleware.ErrorHandler(logger),
	})

	app.Use(
		middleware.TrackID(logger),
		middleware.HTTPMetricsMiddleware(m, logger),
		recover.New(),
	)

	return app
}
