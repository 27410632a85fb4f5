package publishers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Behyna/cc5mock/internal/metrics"
	"github.com/Behyna/cc5mock/internal/mocks"
	"github.com/Behyna/cc5mock/internal/model"
	"github.com/Behyna/cc5mock/internal/publishers"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func matchEvent(check func(m map[string]any) bool) interface{} {
	return mock.MatchedBy(func(body []byte) bool {
		var m map[string]any
		if err := json.Unmarshal(body, &m); err != nil {
			return false
		}
		return check(m)
	})
}

func TestAuditPublisher_PublishAuthDecision(t *testing.T) {
	ctx := context.Background()
	event := model.AuthDecisionEvent{
		OrderID:        "X123",
		ClientID:       "190100000",
		Type:           "Auth",
		Response:       "Approved",
		ProcReturnCode: "00",
		Rule:           "approved-auth",
		Time:           time.Now(),
	}

	t.Run("published", func(t *testing.T) {
		mockPublisher := &mocks.Publisher{}
		m := metrics.NewMetrics(metrics.NewRegistry())
		p := publishers.NewAuditPublisher(mockPublisher, "cc5mock.events", zap.NewNop(), m)

		mockPublisher.On("Publish", ctx, "", "cc5mock.events", matchEvent(func(m map[string]any) bool {
			return m["event"] == model.EventAuthDecision && m["order_id"] == "X123" && m["rule"] == "approved-auth"
		})).Return(nil).Once()

		p.PublishAuthDecision(ctx, event)

		mockPublisher.AssertExpectations(t)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(model.EventAuthDecision, "success")))
	})

	t.Run("broker failure is swallowed", func(t *testing.T) {
		mockPublisher := &mocks.Publisher{}
		m := metrics.NewMetrics(metrics.NewRegistry())
		p := publishers.NewAuditPublisher(mockPublisher, "cc5mock.events", zap.NewNop(), m)

		mockPublisher.On("Publish", ctx, "", "cc5mock.events", mock.Anything).
			Return(errors.New("channel closed")).Once()

		assert.NotPanics(t, func() { p.PublishAuthDecision(ctx, event) })

		mockPublisher.AssertExpectations(t)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(model.EventAuthDecision, "error")))
	})
}

func TestAuditPublisher_PublishCallback(t *testing.T) {
	ctx := context.Background()
	mockPublisher := &mocks.Publisher{}
	m := metrics.NewMetrics(metrics.NewRegistry())
	p := publishers.NewAuditPublisher(mockPublisher, "audit", zap.NewNop(), m)

	mockPublisher.On("Publish", ctx, "", "audit", matchEvent(func(m map[string]any) bool {
		return m["event"] == model.EventThreeDSCallback &&
			m["system_trans_id"] == "3DS1700000000000" &&
			m["outcome"] == "failed" &&
			m["error"] == "TIMEOUT"
	})).Return(nil).Once()

	p.PublishCallback(ctx, model.CallbackEvent{
		OrderID:       "ORD1",
		SystemTransID: "3DS1700000000000",
		URL:           "https://merchant.test/cb",
		Outcome:       "failed",
		Error:         "TIMEOUT",
	})

	mockPublisher.AssertExpectations(t)
}

func TestNopAuditPublisher(t *testing.T) {
	p := publishers.NewNopAuditPublisher()

	assert.NotPanics(t, func() {
		p.PublishAuthDecision(context.Background(), model.AuthDecisionEvent{})
		p.PublishCallback(context.Background(), model.CallbackEvent{})
	})
}
