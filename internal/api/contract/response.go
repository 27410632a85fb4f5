package contract

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/Behyna/cc5mock/internal/constants"
	"github.com/gofiber/fiber/v2"
)

type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TrackID string `json:"x_track_id,omitempty"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

// XML writes v as an XML body with the CC5 content type.
func XML(c *fiber.Ctx, status int, v any) error {
	body, err := xml.Marshal(v)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, constants.ContentTypeXML)
	return c.Status(status).Send(body)
}

// HTML renders a page into the response body.
func HTML(c *fiber.Ctx, status int, render func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, constants.ContentTypeHTML)
	return c.Status(status).Send(buf.Bytes())
}
