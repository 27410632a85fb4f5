package publishers

import (
	"context"
	"encoding/json"

	"github.com/Behyna/cc5mock/internal/metrics"
	"github.com/Behyna/cc5mock/internal/model"
	"github.com/Behyna/cc5mock/pkg/mq"
	"go.uber.org/zap"
)

// AuditPublisher hands decision events to the broker. Failures are logged and
// never reach the caller.
type AuditPublisher interface {
	PublishAuthDecision(ctx context.Context, event model.AuthDecisionEvent)
	PublishCallback(ctx context.Context, event model.CallbackEvent)
}

type auditPublisher struct {
	publisher mq.Publisher
	queue     string
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

func NewAuditPublisher(publisher mq.Publisher, queue string, logger *zap.Logger, metrics *metrics.Metrics) AuditPublisher {
	return &auditPublisher{publisher: publisher, queue: queue, logger: logger, metrics: metrics}
}

func (a *auditPublisher) PublishAuthDecision(ctx context.Context, event model.AuthDecisionEvent) {
	event.Event = model.EventAuthDecision
	a.publish(ctx, event.Event, event)
}

func (a *auditPublisher) PublishCallback(ctx context.Context, event model.CallbackEvent) {
	event.Event = model.EventThreeDSCallback
	a.publish(ctx, event.Event, event)
}

func (a *auditPublisher) publish(ctx context.Context, name string, event any) {
	body, err := json.Marshal(event)
	if err != nil {
		a.logger.Error("Failed to encode audit event", zap.String("event", name), zap.Error(err))
		a.metrics.RecordEventPublished(name, "error")
		return
	}

	if err := a.publisher.Publish(ctx, "", a.queue, body); err != nil {
		a.logger.Warn("Failed to publish audit event",
			zap.String("event", name),
			zap.String("queue", a.queue),
			zap.Error(err))
		a.metrics.RecordEventPublished(name, "error")
		return
	}

	a.metrics.RecordEventPublished(name, "success")
}

type nopAuditPublisher struct{}

func NewNopAuditPublisher() AuditPublisher {
	return nopAuditPublisher{}
}

func (nopAuditPublisher) PublishAuthDecision(context.Context, model.AuthDecisionEvent) {}

func (nopAuditPublisher) PublishCallback(context.Context, model.CallbackEvent) {}
