package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUser pulls the identity JwtMiddleware stored on the request.
func currentUser(ctx *fiber.Ctx) (uuid.UUID, string) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	email, _ := ctx.Locals("email").(string)
	return userId, email
}

// queryUUID parses an optional uuid query parameter, nil when absent or
// malformed.
func queryUUID(ctx *fiber.Ctx, key string) *uuid.UUID {
	raw := ctx.Query(key)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
