package v1

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// formFields collects the posted fields of a urlencoded or multipart body.
// Only a broken multipart body is an error.
func formFields(c *fiber.Ctx) (url.Values, error) {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))

	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}

		fields := url.Values{}
		for key, values := range form.Value {
			fields[key] = append(fields[key], values...)
		}
		return fields, nil
	}

	return parseURLEncoded(c.Body()), nil
}

// parseURLEncoded splits body on '&' and keeps every pair. Bad escapes and
// ';' are kept as literal text.
func parseURLEncoded(body []byte) url.Values {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)

	args.ParseBytes(body)

	fields := url.Values{}
	args.VisitAll(func(key, value []byte) {
		if len(key) == 0 {
			return
		}
		fields.Add(string(key), string(value))
	})
	return fields
}
