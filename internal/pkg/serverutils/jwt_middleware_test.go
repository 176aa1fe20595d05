package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, secret string, userId uuid.UUID, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId.String(),
		"email":   email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func jwtTestApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/me", NewJwtMiddleware(secret), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"user_id": ctx.Locals("user_id"),
			"email":   ctx.Locals("email"),
		})
	})
	return app
}

func TestJwtMiddlewareUsesInjectedSecret(t *testing.T) {
	// The middleware must honor the secret it was built with, not ambient
	// process state.
	t.Setenv("JWT_SECRET", "environment-secret")

	userId := uuid.New()
	tokenStr := signToken(t, "configured-secret", userId, "staff@tenant.io")

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)

	resp, err := jwtTestApp("configured-secret").Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)

	resp, err = jwtTestApp("environment-secret").Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareAcceptsCookie(t *testing.T) {
	tokenStr := signToken(t, "configured-secret", uuid.New(), "staff@tenant.io")

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tokenStr})

	resp, err := jwtTestApp("configured-secret").Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJwtMiddlewareMissingToken(t *testing.T) {
	resp, err := jwtTestApp("configured-secret").Test(httptest.NewRequest("GET", "/me", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
