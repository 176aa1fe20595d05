package controller

import (
	"crypto/subtle"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPushController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	Subscribe(ctx *fiber.Ctx) error
	Unsubscribe(ctx *fiber.Ctx) error
}

type pushController struct {
	pushService    service.IPushService
	internalAPIKey string
	jwtAuth        fiber.Handler
}

func NewPushController(pushService service.IPushService, internalAPIKey string, jwtAuth fiber.Handler) IPushController {
	return &pushController{
		pushService:    pushService,
		internalAPIKey: internalAPIKey,
		jwtAuth:        jwtAuth,
	}
}

func (c *pushController) RegisterRoutes(r fiber.Router) {
	// Server-to-server fan-out, gated by the shared secret.
	r.Post("/push/send", c.requireInternalKey, c.Send)

	h := r.Group("/push/v1")
	h.Use(c.jwtAuth)
	h.Post("subscriptions", c.Subscribe)
	h.Delete("subscriptions", c.Unsubscribe)
}

func (c *pushController) requireInternalKey(ctx *fiber.Ctx) error {
	key := ctx.Get("X-Internal-API-Key")
	if c.internalAPIKey == "" ||
		subtle.ConstantTimeCompare([]byte(key), []byte(c.internalAPIKey)) != 1 {
		return serverutils.NewUnauthorizedError("invalid internal API key")
	}
	return ctx.Next()
}

func (c *pushController) Send(ctx *fiber.Ctx) error {
	var req dto.SendPushRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.pushService.Send(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *pushController) Subscribe(ctx *fiber.Ctx) error {
	userId, _ := currentUser(ctx)

	var req dto.SubscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.pushService.Subscribe(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success store subscription", struct{}{}))
}

func (c *pushController) Unsubscribe(ctx *fiber.Ctx) error {
	userId, _ := currentUser(ctx)

	var req dto.UnsubscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.pushService.Unsubscribe(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove subscription", struct{}{}))
}
