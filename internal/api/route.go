package api

import (
	v1 "github.com/Behyna/cc5mock/internal/api/v1"
	"github.com/Behyna/cc5mock/internal/api/v1/middleware"
	"github.com/Behyna/cc5mock/internal/constants"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, registry *prometheus.Registry) {
	xml := middleware.ResponseFormat(constants.FormatXML)
	html := middleware.ResponseFormat(constants.FormatHTML)

	app.Get("/", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	app.Post("/ping", xml, handler.Ping)
	app.Post("/", xml, handler.Authorize)
	app.Post("/cc5/pay", xml, handler.Authorize)
	app.Post("/fim/est3Dgate", html, handler.ThreeDSGate)
}
