package service_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Behyna/cc5mock/internal/constants"
	"github.com/Behyna/cc5mock/internal/metrics"
	"github.com/Behyna/cc5mock/internal/mocks"
	"github.com/Behyna/cc5mock/internal/model"
	"github.com/Behyna/cc5mock/internal/publishers"
	"github.com/Behyna/cc5mock/internal/service"
	"github.com/Behyna/cc5mock/internal/validator"
	"github.com/Behyna/cc5mock/pkg/callback"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newThreeDSService(t *testing.T, notifier callback.Notifier) (service.ThreeDSService, *metrics.Metrics) {
	t.Helper()

	m := metrics.NewMetrics(metrics.NewRegistry())
	x := validator.NewXValidator(validator.NewValidate(), m)
	svc := service.NewThreeDSService(notifier, x, publishers.NewNopAuditPublisher(), zap.NewNop(), m)
	service.SetThreeDSClock(svc, func() time.Time { return fixedNow })

	return svc, m
}

func TestThreeDSService_Complete(t *testing.T) {
	ctx := context.Background()
	systemTransID := "3DS" + "1762521667000"

	t.Run("success notifies merchant once", func(t *testing.T) {
		notifier := &mocks.Notifier{}
		svc, m := newThreeDSService(t, notifier)

		fields := url.Values{
			"oid":       {"ORD1"},
			"okURL":     {"https://merchant.test/cb"},
			"amount":    {"10.00"},
			"pan":       {"4111111111111111"},
			"rnd":       {"r4nd"},
			"storetype": {"3d_pay"},
		}
		expectedURL := "https://merchant.test/cb?OrderId=ORD1&SystemTransId=" + systemTransID +
			"&Result=3DSuccess&TotalAmount=10.00&InstallmentCount=0&Hash=MOCKHASH&MDStatus=1" +
			"&maskedCreditCard=4111+%2A%2A%2A%2A+%2A%2A%2A%2A+1111&storetype=3d_pay&rnd=r4nd"

		notifier.On("Notify", ctx, expectedURL).
			Return(callback.Result{StatusCode: 200, Duration: 5 * time.Millisecond}).Once()

		result, err := svc.Complete(ctx, fields)

		require.NoError(t, err)
		assert.Equal(t, "ORD1", result.Form.Oid)
		assert.Equal(t, expectedURL, result.CallbackURL)
		assert.Equal(t, systemTransID, result.Params.SystemTransID)
		assert.Equal(t, "4111 **** **** 1111", result.Params.MaskedCreditCard)
		assert.True(t, result.Callback.OK())
		notifier.AssertNumberOfCalls(t, "Notify", 1)
		notifier.AssertExpectations(t)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.CallbacksTotal.WithLabelValues(callback.OutcomeDelivered)))
	})

	t.Run("defaults and aliases", func(t *testing.T) {
		notifier := &mocks.Notifier{}
		svc, _ := newThreeDSService(t, notifier)

		fields := url.Values{"OKURL": {"https://merchant.test/cb?sid=1"}, "pan": {"1234"}}

		notifier.On("Notify", ctx, mock.MatchedBy(func(target string) bool {
			return strings.HasPrefix(target, "https://merchant.test/cb?sid=1&OrderId=UNKNOWN_OID&")
		})).Return(callback.Result{StatusCode: 200}).Once()

		result, err := svc.Complete(ctx, fields)

		require.NoError(t, err)
		assert.Equal(t, service.DefaultOid, result.Params.OrderID)
		assert.Equal(t, service.DefaultAmount, result.Params.TotalAmount)
		assert.Equal(t, service.DefaultStoreType, result.Params.StoreType)
		assert.Empty(t, result.Params.MaskedCreditCard)
		assert.Equal(t, "0", result.Params.InstallmentCount)
		assert.Equal(t, "1", result.Params.MDStatus)
		assert.Equal(t, "3DSuccess", result.Params.Result)
		notifier.AssertExpectations(t)
	})

	t.Run("missing okURL sends nothing", func(t *testing.T) {
		notifier := &mocks.Notifier{}
		svc, m := newThreeDSService(t, notifier)

		result, err := svc.Complete(ctx, url.Values{"oid": {"ORD2"}, "failURL": {"https://merchant.test/fail"}})

		var serviceErr service.Error
		require.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeMissingOkURL, serviceErr.Code)
		assert.Equal(t, "ORD2", result.Form.Oid)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
		assert.Equal(t, 0, testutil.CollectAndCount(m.CallbacksTotal))
	})

	t.Run("callback failure is not an error", func(t *testing.T) {
		notifier := &mocks.Notifier{}
		svc, m := newThreeDSService(t, notifier)

		notifier.On("Notify", ctx, mock.Anything).
			Return(callback.Result{Err: callback.ErrTimeout, Duration: 10 * time.Second}).Once()

		result, err := svc.Complete(ctx, url.Values{"oid": {"ORD3"}, "okUrl": {"https://merchant.test/cb"}})

		require.NoError(t, err)
		assert.False(t, result.Callback.OK())
		assert.Equal(t, callback.OutcomeFailed, result.Callback.Outcome())
		assert.Equal(t, 1.0, testutil.ToFloat64(m.CallbacksTotal.WithLabelValues(callback.OutcomeFailed)))
		notifier.AssertExpectations(t)
	})
}

func TestThreeDSService_PublishesCallback(t *testing.T) {
	ctx := context.Background()
	notifier := &mocks.Notifier{}
	audit := &mocks.AuditPublisher{}
	m := metrics.NewMetrics(metrics.NewRegistry())
	x := validator.NewXValidator(validator.NewValidate(), m)
	svc := service.NewThreeDSService(notifier, x, audit, zap.NewNop(), m)

	notifier.On("Notify", ctx, mock.Anything).Return(callback.Result{Err: callback.ErrNetwork}).Once()
	audit.On("PublishCallback", ctx, mock.MatchedBy(func(e model.CallbackEvent) bool {
		return e.OrderID == "ORD4" && e.Outcome == callback.OutcomeFailed && e.Error == callback.ErrCodeNetworkError
	})).Once()

	_, err := svc.Complete(ctx, url.Values{"oid": {"ORD4"}, "okURL": {"https://merchant.test/cb"}})

	require.NoError(t, err)
	audit.AssertExpectations(t)
}
