package controller

import (
	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Reply(ctx *fiber.Ctx) error
}

type messageController struct {
	accessService  service.IAccessService
	sessionService service.ISessionService
	jwtAuth        fiber.Handler
}

func NewMessageController(accessService service.IAccessService, sessionService service.ISessionService, jwtAuth fiber.Handler) IMessageController {
	return &messageController{
		accessService:  accessService,
		sessionService: sessionService,
		jwtAuth:        jwtAuth,
	}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	// The widget polls /messages without a staff token; a session id is an
	// unguessable capability.
	r.Get("/messages", c.List)

	r.Post("/reply", c.jwtAuth, c.Reply)
}

func (c *messageController) List(ctx *fiber.Ctx) error {
	raw := ctx.Query("sessionId")
	if raw == "" {
		raw = ctx.Query("session_id")
	}
	if raw == "" {
		return serverutils.NewValidationError("sessionId is required")
	}
	sessionId, err := uuid.Parse(raw)
	if err != nil {
		return serverutils.NewValidationError("sessionId must be a valid uuid")
	}

	res, err := c.sessionService.Messages(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	// Bare shape, not the envelope: the widget predates it.
	return ctx.JSON(res)
}

func (c *messageController) Reply(ctx *fiber.Ctx) error {
	userId, email := currentUser(ctx)
	grant, err := c.accessService.ResolveGrant(ctx.Context(), userId, email)
	if err != nil {
		return err
	}

	var req dto.ReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Reply(ctx.Context(), grant, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
