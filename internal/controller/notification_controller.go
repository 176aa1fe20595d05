package controller

import (
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	BySession(ctx *fiber.Ctx) error
	MarkHandled(ctx *fiber.Ctx) error
}

type notificationController struct {
	accessService       service.IAccessService
	notificationService service.INotificationService
	jwtAuth             fiber.Handler
}

func NewNotificationController(accessService service.IAccessService, notificationService service.INotificationService, jwtAuth fiber.Handler) INotificationController {
	return &notificationController{
		accessService:       accessService,
		notificationService: notificationService,
		jwtAuth:             jwtAuth,
	}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notifications/v1")
	h.Use(c.jwtAuth)
	h.Get("session/:sessionId", c.BySession)
	h.Put(":id/handled", c.MarkHandled)
}

func (c *notificationController) BySession(ctx *fiber.Ctx) error {
	userId, email := currentUser(ctx)
	grant, err := c.accessService.ResolveGrant(ctx.Context(), userId, email)
	if err != nil {
		return err
	}

	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return serverutils.NewValidationError("invalid session id")
	}

	res, err := c.notificationService.BySession(ctx.Context(), grant, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success load notification", res))
}

func (c *notificationController) MarkHandled(ctx *fiber.Ctx) error {
	userId, email := currentUser(ctx)
	grant, err := c.accessService.ResolveGrant(ctx.Context(), userId, email)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid notification id")
	}

	if err := c.notificationService.MarkHandled(ctx.Context(), grant, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success mark handled", struct{}{}))
}
