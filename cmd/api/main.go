package main

import (
	"context"
	"time"

	"github.com/Behyna/cc5mock/internal/api"
	v1 "github.com/Behyna/cc5mock/internal/api/v1"
	"github.com/Behyna/cc5mock/internal/config"
	"github.com/Behyna/cc5mock/internal/metrics"
	"github.com/Behyna/cc5mock/internal/publishers"
	"github.com/Behyna/cc5mock/internal/service"
	"github.com/Behyna/cc5mock/internal/validator"
	"github.com/Behyna/cc5mock/pkg/callback"
	"github.com/Behyna/cc5mock/pkg/httpclient"
	"github.com/Behyna/cc5mock/pkg/mq"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			NewLogger,

			metrics.NewRegistry,
			metrics.NewMetrics,
			metrics.NewSystemCollector,

			validator.NewValidate,
			validator.NewXValidator,

			NewHTTPClient,
			NewNotifier,
			NewAuditPublisher,

			service.DefaultRuleTable,
			service.NewAuthService,
			service.NewThreeDSService,

			v1.NewHandler,
			api.NewFiberApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, registry *prometheus.Registry, collector *metrics.SystemCollector,
	cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, registry)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(cfg.Metrics.CollectInterval, cfg.App.Version)

			go func() {
				if err := app.Listen(cfg.API.Addr()); err != nil {
					logger.Error("server stopped", zap.Error(err))
				}
			}()

			logger.Info("mock server listening", zap.String("addr", cfg.API.Addr()))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			collector.Stop()
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err == nil {
		zcfg.Level = level
	}

	return zcfg.Build()
}

func NewHTTPClient(cfg *config.Config) httpclient.HTTPClient {
	// The notifier applies its own per-call deadline; this is a backstop.
	return httpclient.NewHTTPClient(cfg.Callback.Timeout + time.Second)
}

func NewNotifier(cfg *config.Config, client httpclient.HTTPClient) callback.Notifier {
	return callback.NewNotifier(cfg.Callback, client)
}

// NewAuditPublisher dials RabbitMQ only when events are enabled.
func NewAuditPublisher(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics,
	lc fx.Lifecycle) (publishers.AuditPublisher, error) {
	if !cfg.Events.Enable {
		return publishers.NewNopAuditPublisher(), nil
	}

	rabbit, err := mq.NewConnection(cfg.Events.RabbitMQ, logger)
	if err != nil {
		return nil, err
	}

	if err = rabbit.DeclareQueue(cfg.Events.Queue); err != nil {
		_ = rabbit.Close()
		return nil, err
	}

	publisher, err := rabbit.CreatePublisher()
	if err != nil {
		_ = rabbit.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = publisher.Close()
			return rabbit.Close()
		},
	})

	logger.Info("audit events enabled", zap.String("queue", cfg.Events.Queue))

	return publishers.NewAuditPublisher(publisher, cfg.Events.Queue, logger, m), nil
}
