package middleware

import (
	"github.com/Behyna/cc5mock/internal/constants"
	"github.com/Behyna/cc5mock/internal/tracking"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TrackID reuses a valid incoming X-Track-ID or generates one, echoes it in
// the response and stores it in the user context.
func TrackID(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := utils.CopyString(c.Get(tracking.Header))
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(tracking.Header, id)
		c.SetUserContext(tracking.WithTrackID(c.UserContext(), id))

		logger.Debug("Request received",
			zap.String("track_id", id),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("body_size", len(c.Body())),
		)

		return c.Next()
	}
}

// ResponseFormat selects how the error handler renders failures of a route.
func ResponseFormat(format string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(constants.FormatKey, format)
		return c.Next()
	}
}
