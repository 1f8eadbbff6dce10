package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorMapping translates a sentinel error into an HTTP status. When Message
// is empty the error text is returned to the client.
type ErrorMapping struct {
	Target  error
	Status  int
	Message string
}

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON
// envelope. Unknown errors become a 500 without leaking their text.
func ErrorHandlerMiddleware(mappings ...ErrorMapping) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var verr *ValidationError
		if errors.As(err, &verr) {
			res := ErrorResponse(fiber.StatusBadRequest, "Invalid request")
			res.Errors = verr.Fields
			return c.Status(fiber.StatusBadRequest).JSON(res)
		}

		for _, m := range mappings {
			if errors.Is(err, m.Target) {
				msg := m.Message
				if msg == "" {
					msg = err.Error()
				}
				return c.Status(m.Status).JSON(ErrorResponse(m.Status, msg))
			}
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return c.Status(ferr.Code).JSON(ErrorResponse(ferr.Code, ferr.Message))
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
