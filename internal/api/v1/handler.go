package v1

import (
	"io"
	"time"

	"github.com/Behyna/cc5mock/internal/api/contract"
	"github.com/Behyna/cc5mock/internal/api/view"
	"github.com/Behyna/cc5mock/internal/config"
	"github.com/Behyna/cc5mock/internal/constants"
	"github.com/Behyna/cc5mock/internal/model"
	"github.com/Behyna/cc5mock/internal/service"
	"github.com/Behyna/cc5mock/internal/tracking"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger         *zap.Logger
	serviceName    string
	authService    service.AuthService
	threeDSService service.ThreeDSService
}

func NewHandler(logger *zap.Logger, cfg *config.Config, authService service.AuthService,
	threeDSService service.ThreeDSService,
) *Handler {
	return &Handler{
		logger:         logger,
		serviceName:    cfg.App.Name,
		authService:    authService,
		threeDSService: threeDSService,
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(contract.HealthResponse{
		OK:      true,
		Service: h.serviceName,
		Time:    time.Now().UTC().Format(constants.ISOTimeLayout),
	})
}

func (h *Handler) Ping(c *fiber.Ctx) error {
	return contract.XML(c, fiber.StatusOK, model.Pong{Time: time.Now().UTC().Format(constants.ISOTimeLayout)})
}

// Authorize answers a CC5Request with the response of the first matching mock rule.
func (h *Handler) Authorize(c *fiber.Ctx) error {
	resp, err := h.authService.Authorize(c.UserContext(), c.Body())
	if err != nil {
		return err
	}

	return contract.XML(c, fiber.StatusOK, resp)
}

// ThreeDSGate plays the ACS: it notifies the merchant okURL and shows the
// caller what was sent.
func (h *Handler) ThreeDSGate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	fields, err := formFields(c)
	if err != nil {
		h.logger.Warn("Failed to parse 3DS form",
			zap.Error(err),
			zap.String("track_id", tracking.TrackID(ctx)),
			zap.String("content_type", c.Get(fiber.HeaderContentType)))
		return service.NewServiceError(constants.ErrCodeInvalidForm, err)
	}

	result, err := h.threeDSService.Complete(ctx, fields)
	if err != nil {
		return err
	}

	return contract.HTML(c, fiber.StatusOK, func(w io.Writer) error {
		return view.RenderConfirmation(w, result)
	})
}
