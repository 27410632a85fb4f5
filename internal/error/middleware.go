package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/Behyna/cc5mock/internal/api/contract"
	"github.com/Behyna/cc5mock/internal/api/view"
	"github.com/Behyna/cc5mock/internal/constants"
	"github.com/Behyna/cc5mock/internal/model"
	"github.com/Behyna/cc5mock/internal/service"
	"github.com/Behyna/cc5mock/internal/tracking"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(contract.ResponseError{
				Code:    http.StatusText(fiberErr.Code),
				Message: fiberErr.Message,
				TrackID: tracking.TrackID(c.UserContext()),
			})
		}

		logger.Error("Unhandled error",
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("track_id", tracking.TrackID(c.UserContext())),
		)

		return render(c, constants.ErrCodeInternalError)
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == fiber.StatusInternalServerError && err.Code != constants.ErrCodeInternalError {
		errorCode = constants.ErrCodeInternalError
	}

	return render(c, errorCode)
}

func render(c *fiber.Ctx, code string) error {
	status := constants.GetHTTPStatus(code)
	message := constants.GetErrorMessage(code)

	format, _ := c.Locals(constants.FormatKey).(string)
	switch format {
	case constants.FormatXML:
		response, procReturnCode := constants.GetResponseStatus(code)
		return contract.XML(c, status, model.AuthResponse{
			Response:       response,
			ProcReturnCode: procReturnCode,
			ErrMsg:         message,
		})
	case constants.FormatHTML:
		return contract.HTML(c, status, func(w io.Writer) error {
			return view.RenderNotice(w, code, message)
		})
	default:
		return c.Status(status).JSON(contract.ResponseError{
			Code:    code,
			Message: message,
			TrackID: tracking.TrackID(c.UserContext()),
		})
	}
}
