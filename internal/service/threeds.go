package service

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/Behyna/cc5mock/internal/constants"
	"github.com/Behyna/cc5mock/internal/metrics"
	"github.com/Behyna/cc5mock/internal/model"
	"github.com/Behyna/cc5mock/internal/publishers"
	"github.com/Behyna/cc5mock/internal/tracking"
	"github.com/Behyna/cc5mock/internal/validator"
	"github.com/Behyna/cc5mock/pkg/callback"
	"go.uber.org/zap"
)

const (
	SystemTransIDPrefix = "3DS"

	ResultSuccess    = "3DSuccess"
	InstallmentCount = "0"
	HashPlaceholder  = "MOCKHASH"
	MDStatusSuccess  = "1"
)

type ThreeDSService interface {
	Complete(ctx context.Context, fields url.Values) (model.ThreeDSResult, error)
}

type threeDSService struct {
	notifier  callback.Notifier
	validator validator.IXValidator
	publisher publishers.AuditPublisher
	log       *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewThreeDSService(notifier callback.Notifier, validator validator.IXValidator, publisher publishers.AuditPublisher,
	log *zap.Logger, metrics *metrics.Metrics,
) ThreeDSService {
	return &threeDSService{
		notifier:  notifier,
		validator: validator,
		publisher: publisher,
		log:       log,
		metrics:   metrics,
		now:       time.Now,
	}
}

func (s *threeDSService) Complete(ctx context.Context, fields url.Values) (model.ThreeDSResult, error) {
	trackID := tracking.TrackID(ctx)
	form := parseThreeDSForm(fields)

	if errs := s.validator.Validate(&form); validator.HasField(errs, "OkURL") {
		s.log.Warn("3DS form without okURL, skipping merchant callback",
			zap.String("track_id", trackID),
			zap.String("oid", form.Oid))
		return model.ThreeDSResult{Form: form}, NewServiceError(constants.ErrCodeMissingOkURL, ErrMissingOkURL)
	}

	now := s.now()
	params := model.CallbackParams{
		OrderID:          form.Oid,
		SystemTransID:    SystemTransIDPrefix + strconv.FormatInt(now.UnixMilli(), 10),
		Result:           ResultSuccess,
		TotalAmount:      form.Amount,
		InstallmentCount: InstallmentCount,
		Hash:             HashPlaceholder,
		MDStatus:         MDStatusSuccess,
		MaskedCreditCard: MaskPAN(form.Pan),
		StoreType:        form.StoreType,
		Rnd:              form.Rnd,
	}
	target := BuildCallbackURL(form.OkURL, params)

	result := s.notifier.Notify(ctx, target)
	s.logCallback(trackID, params, target, result)
	s.metrics.RecordCallback(result.Outcome(), result.Duration)

	event := model.CallbackEvent{
		OrderID:       params.OrderID,
		SystemTransID: params.SystemTransID,
		URL:           target,
		Outcome:       result.Outcome(),
		StatusCode:    result.StatusCode,
		DurationMS:    result.Duration.Milliseconds(),
		TrackID:       trackID,
		Time:          now,
	}
	if result.Err != nil {
		event.Error = result.Err.Error()
	}
	s.publisher.PublishCallback(ctx, event)

	return model.ThreeDSResult{
		Form:        form,
		Params:      params,
		CallbackURL: target,
		Callback:    result,
	}, nil
}

func (s *threeDSService) logCallback(trackID string, params model.CallbackParams, target string, result callback.Result) {
	fields := []zap.Field{
		zap.String("track_id", trackID),
		zap.String("oid", params.OrderID),
		zap.String("system_trans_id", params.SystemTransID),
		zap.String("url", target),
		zap.Duration("duration", result.Duration),
	}

	switch {
	case result.Skipped:
		s.log.Info("Merchant callback disabled", fields...)
	case result.Err != nil:
		s.log.Warn("Merchant callback failed", append(fields, zap.Error(result.Err))...)
	default:
		s.log.Info("Merchant callback sent", append(fields, zap.Int("status_code", result.StatusCode))...)
	}
}
