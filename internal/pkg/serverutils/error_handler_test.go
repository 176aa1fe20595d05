package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func errorTestApp(err error) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return err
	})
	return app
}

func requestBoom(t *testing.T, app *fiber.App) (int, ErrorBody) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var body ErrorBody
	assert.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHandlerMapsTaxonomyToStatus(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", NewValidationError("message is required"), fiber.StatusBadRequest, "message is required"},
		{"unauthorized", NewUnauthorizedError("missing token"), fiber.StatusUnauthorized, "missing token"},
		{"forbidden", NewForbiddenError("session is outside your scope"), fiber.StatusForbidden, "session is outside your scope"},
		{"not found", NewNotFoundError("session not found"), fiber.StatusNotFound, "session not found"},
		{"upstream", NewUpstreamError("failed to load session", errors.New("pq: connection refused")), fiber.StatusInternalServerError, "failed to load session"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := requestBoom(t, errorTestApp(tc.err))
			assert.Equal(t, tc.status, code)
			assert.False(t, body.Success)
			assert.Equal(t, tc.status, body.Code)
			assert.Equal(t, tc.message, body.Error)
		})
	}
}

func TestErrorHandlerDoesNotLeakUpstreamDetail(t *testing.T) {
	_, body := requestBoom(t, errorTestApp(
		NewUpstreamError("failed to deliver notification", errors.New("dial tcp: i/o timeout"))))
	assert.NotContains(t, body.Error, "dial tcp")
	assert.Equal(t, "failed to deliver notification", body.Error)
}

func TestErrorHandlerUnwrapsWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("handling reply: %w", NewForbiddenError("session is outside your scope"))
	code, body := requestBoom(t, errorTestApp(wrapped))
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "session is outside your scope", body.Error)
}

func TestErrorHandlerPassesThroughFiberErrors(t *testing.T) {
	code, body := requestBoom(t, errorTestApp(fiber.ErrMethodNotAllowed))
	assert.Equal(t, fiber.StatusMethodNotAllowed, code)
	assert.Equal(t, fiber.StatusMethodNotAllowed, body.Code)
}

func TestErrorHandlerMasksUnknownErrors(t *testing.T) {
	code, body := requestBoom(t, errorTestApp(errors.New("pq: duplicate key value")))
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "internal server error", body.Error)
	assert.NotContains(t, body.Error, "pq:")
}

func TestAppErrorPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("x")))
	assert.True(t, IsForbidden(fmt.Errorf("wrap: %w", NewForbiddenError("x"))))
	assert.True(t, IsValidation(NewValidationError("x")))
	assert.False(t, IsNotFound(errors.New("x")))
	assert.False(t, IsValidation(NewNotFoundError("x")))
}
