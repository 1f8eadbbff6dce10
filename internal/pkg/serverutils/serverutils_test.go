package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"required,email"`
}

func TestValidateRequest(t *testing.T) {
	err := ValidateRequest(sampleRequest{Name: "toolong", Email: "nope"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at most 5 characters", verr.Fields["name"])
	assert.Equal(t, "must be a valid e-mail address", verr.Fields["email"])

	assert.NoError(t, ValidateRequest(sampleRequest{Name: "Ana", Email: "ana@example.com"}))
}

var errBusy = errors.New("busy")

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(ErrorMapping{Target: errBusy, Status: fiber.StatusConflict}))
	app.Get("/busy", func(c *fiber.Ctx) error { return errBusy })
	app.Get("/invalid", func(c *fiber.Ctx) error { return NewValidationError("step", "is invalid") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("db password leaked") })
	app.Get("/gone", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/busy", fiber.StatusConflict, "busy"},
		{"/invalid", fiber.StatusBadRequest, "Invalid request"},
		{"/boom", fiber.StatusInternalServerError, "Internal server error"},
		{"/gone", fiber.StatusNotFound, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body BaseResponse[any]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
