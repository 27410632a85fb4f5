package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Behyna/cc5mock/internal/constants"
	"github.com/Behyna/cc5mock/internal/metrics"
	"github.com/Behyna/cc5mock/internal/model"
	"github.com/Behyna/cc5mock/internal/publishers"
	"github.com/Behyna/cc5mock/internal/tracking"
	"github.com/Behyna/cc5mock/internal/validator"
	"go.uber.org/zap"
)

type AuthService interface {
	Authorize(ctx context.Context, body []byte) (model.AuthResponse, error)
}

type authService struct {
	rules     RuleTable
	validator validator.IXValidator
	publisher publishers.AuditPublisher
	log       *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewAuthService(rules RuleTable, validator validator.IXValidator, publisher publishers.AuditPublisher,
	log *zap.Logger, metrics *metrics.Metrics,
) AuthService {
	return &authService{
		rules:     rules,
		validator: validator,
		publisher: publisher,
		log:       log,
		metrics:   metrics,
		now:       time.Now,
	}
}

func (s *authService) Authorize(ctx context.Context, body []byte) (model.AuthResponse, error) {
	trackID := tracking.TrackID(ctx)

	req, err := decodeAuthRequest(body)
	if err != nil {
		s.log.Warn("Failed to parse CC5Request",
			zap.String("track_id", trackID),
			zap.Int("body_size", len(body)),
			zap.Error(err))
		s.recordFailure(ctx, req, constants.ErrCodeInvalidXML)
		return model.AuthResponse{}, NewServiceError(constants.ErrCodeInvalidXML, fmt.Errorf("%w: %v", ErrInvalidXML, err))
	}

	if errs := s.validator.Validate(&req); validator.HasField(errs, "OrderID") {
		s.log.Warn("CC5Request without OrderId",
			zap.String("track_id", trackID),
			zap.String("client_id", req.ClientID),
			zap.String("type", req.Type))
		s.recordFailure(ctx, req, constants.ErrCodeMissingOrderID)
		return model.AuthResponse{}, NewServiceError(constants.ErrCodeMissingOrderID, ErrMissingOrderID)
	}

	rule, ok := s.rules.Match(req)
	if !ok {
		s.log.Info("No mock matched",
			zap.String("track_id", trackID),
			zap.String("order_id", req.OrderID),
			zap.String("client_id", req.ClientID),
			zap.String("type", req.Type),
			zap.String("total", req.Total))
		s.recordFailure(ctx, req, constants.ErrCodeNoMockMatched)
		return model.AuthResponse{}, NewServiceError(constants.ErrCodeNoMockMatched, ErrNoMockMatched)
	}

	now := s.now()
	resp := rule.Build(req, now)

	s.log.Info("Mock matched",
		zap.String("track_id", trackID),
		zap.String("rule", rule.Name),
		zap.String("order_id", req.OrderID),
		zap.String("response", resp.Response),
		zap.String("proc_return_code", resp.ProcReturnCode))

	s.record(ctx, req, resp.Response, resp.ProcReturnCode, rule.Name, now)

	return resp, nil
}

func (s *authService) recordFailure(ctx context.Context, req model.AuthRequest, code string) {
	response, procReturnCode := constants.GetResponseStatus(code)
	s.record(ctx, req, response, procReturnCode, "", s.now())
}

func (s *authService) record(ctx context.Context, req model.AuthRequest, response, procReturnCode, rule string, now time.Time) {
	s.metrics.RecordAuthDecision(response, rule)
	s.publisher.PublishAuthDecision(ctx, model.AuthDecisionEvent{
		OrderID:        req.OrderID,
		ClientID:       req.ClientID,
		Type:           req.Type,
		Total:          req.Total,
		Response:       response,
		ProcReturnCode: procReturnCode,
		Rule:           rule,
		TrackID:        tracking.TrackID(ctx),
		Time:           now,
	})
}
