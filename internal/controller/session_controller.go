package controller

import (
	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Action(ctx *fiber.Ctx) error
	BulkAction(ctx *fiber.Ctx) error
	VisitorTyping(ctx *fiber.Ctx) error
	SetTyping(ctx *fiber.Ctx) error
}

type sessionController struct {
	accessService  service.IAccessService
	sessionService service.ISessionService
	jwtAuth        fiber.Handler
}

func NewSessionController(accessService service.IAccessService, sessionService service.ISessionService, jwtAuth fiber.Handler) ISessionController {
	return &sessionController{
		accessService:  accessService,
		sessionService: sessionService,
		jwtAuth:        jwtAuth,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sessions")
	h.Use(c.jwtAuth)
	h.Get("", c.List)
	h.Patch("", c.Action)
	h.Post("", c.BulkAction)
	h.Get(":id/typing", c.VisitorTyping)
	h.Put(":id/typing", c.SetTyping)
}

func (c *sessionController) grant(ctx *fiber.Ctx) (*entity.AccessGrant, error) {
	userId, email := currentUser(ctx)
	return c.accessService.ResolveGrant(ctx.Context(), userId, email)
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	grant, err := c.grant(ctx)
	if err != nil {
		return err
	}

	filter := service.SessionFilter{
		CustomerId: queryUUID(ctx, "customerId"),
		UnreadOnly: ctx.QueryBool("unread"),
		Search:     ctx.Query("q"),
	}

	res, err := c.sessionService.List(ctx.Context(), grant, filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *sessionController) Action(ctx *fiber.Ctx) error {
	grant, err := c.grant(ctx)
	if err != nil {
		return err
	}

	var req dto.SessionActionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	switch req.Action {
	case dto.ActionMarkAsRead:
		err = c.sessionService.MarkAsRead(ctx.Context(), grant, req.SessionId)
	case dto.ActionMarkAsUnread:
		err = c.sessionService.MarkAsUnread(ctx.Context(), grant, req.SessionId)
	case dto.ActionDelete:
		err = c.sessionService.Delete(ctx.Context(), grant, req.SessionId)
	case dto.ActionAssign:
		var toUserId, toTeamId *uuid.UUID
		if req.Data != nil {
			toUserId, toTeamId = req.Data.ToUserId, req.Data.ToTeamId
		}
		err = c.sessionService.Assign(ctx.Context(), grant, req.SessionId, toUserId, toTeamId)
	default:
		err = serverutils.NewValidationError("unknown action")
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success "+req.Action, struct{}{}))
}

func (c *sessionController) BulkAction(ctx *fiber.Ctx) error {
	grant, err := c.grant(ctx)
	if err != nil {
		return err
	}

	var req dto.BulkSessionActionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	updated, err := c.sessionService.MarkAllAsRead(ctx.Context(), grant, req.CustomerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success mark all as read", dto.BulkSessionActionResponse{Updated: updated}))
}

func (c *sessionController) VisitorTyping(ctx *fiber.Ctx) error {
	grant, err := c.grant(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid session id")
	}

	typing, err := c.sessionService.VisitorTyping(ctx.Context(), grant, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", dto.VisitorTypingResponse{Typing: typing}))
}

func (c *sessionController) SetTyping(ctx *fiber.Ctx) error {
	grant, err := c.grant(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid session id")
	}

	var req dto.SetTypingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.sessionService.SetStaffTyping(ctx.Context(), grant, id, *req.Typing); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", struct{}{}))
}
