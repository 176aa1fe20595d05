package controller

import (
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Users(ctx *fiber.Ctx) error
	Teams(ctx *fiber.Ctx) error
}

type adminController struct {
	accessService service.IAccessService
	adminService  service.IAdminService
	jwtAuth       fiber.Handler
}

func NewAdminController(accessService service.IAccessService, adminService service.IAdminService, jwtAuth fiber.Handler) IAdminController {
	return &adminController{
		accessService: accessService,
		adminService:  adminService,
		jwtAuth:       jwtAuth,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(c.jwtAuth)
	h.Get("users", c.Users)
	h.Get("teams", c.Teams)
}

func (c *adminController) adminGrant(ctx *fiber.Ctx) (*entity.AccessGrant, error) {
	userId, email := currentUser(ctx)
	grant, err := c.accessService.ResolveGrant(ctx.Context(), userId, email)
	if err != nil {
		return nil, err
	}
	if !grant.CanAccessAdmin() {
		return nil, serverutils.NewForbiddenError("admin capability required")
	}
	return grant, nil
}

func (c *adminController) Users(ctx *fiber.Ctx) error {
	grant, err := c.adminGrant(ctx)
	if err != nil {
		return err
	}

	res, err := c.adminService.Users(ctx.Context(), grant, queryUUID(ctx, "customerId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list users", res))
}

func (c *adminController) Teams(ctx *fiber.Ctx) error {
	grant, err := c.adminGrant(ctx)
	if err != nil {
		return err
	}

	res, err := c.adminService.Teams(ctx.Context(), grant, queryUUID(ctx, "customerId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list teams", res))
}
