package mocks

import (
	"context"

	"github.com/Behyna/cc5mock/internal/model"
	"github.com/stretchr/testify/mock"
)

type Publisher struct {
	mock.Mock
}

func (p *Publisher) Publish(ctx context.Context, exchange string, routingKey string, body []byte) error {
	args := p.Called(ctx, exchange, routingKey, body)
	return args.Error(0)
}

type AuditPublisher struct {
	mock.Mock
}

func (a *AuditPublisher) PublishAuthDecision(ctx context.Context, event model.AuthDecisionEvent) {
	a.Called(ctx, event)
}

func (a *AuditPublisher) PublishCallback(ctx context.Context, event model.CallbackEvent) {
	a.Called(ctx, event)
}
