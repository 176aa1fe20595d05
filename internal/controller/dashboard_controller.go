package controller

import (
	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Load(ctx *fiber.Ctx) error
}

type dashboardController struct {
	accessService  service.IAccessService
	sessionService service.ISessionService
	adminService   service.IAdminService
	jwtAuth        fiber.Handler
}

func NewDashboardController(
	accessService service.IAccessService,
	sessionService service.ISessionService,
	adminService service.IAdminService,
	jwtAuth fiber.Handler,
) IDashboardController {
	return &dashboardController{
		accessService:  accessService,
		sessionService: sessionService,
		adminService:   adminService,
		jwtAuth:        jwtAuth,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")
	h.Use(c.jwtAuth)
	h.Get("", c.Load)
}

// Load is the single round-trip the dashboard makes on open: the resolved
// scope, the scoped session list and the customer filter options.
func (c *dashboardController) Load(ctx *fiber.Ctx) error {
	userId, email := currentUser(ctx)

	grant, err := c.accessService.ResolveGrant(ctx.Context(), userId, email)
	if err != nil {
		return err
	}

	sessions, err := c.sessionService.List(ctx.Context(), grant, service.SessionFilter{
		CustomerId: queryUUID(ctx, "customerId"),
	})
	if err != nil {
		return err
	}

	customers, err := c.adminService.Customers(ctx.Context(), grant)
	if err != nil {
		return err
	}

	res := dto.DashboardResponse{
		Access: dto.AccessResponse{
			IsSuperadmin:   grant.IsSuperadmin,
			Role:           grant.Role,
			OrganizationId: grant.OrganizationId,
			CustomerIds:    grant.CustomerIds,
		},
		Sessions:    sessions.Sessions,
		UnreadCount: sessions.UnreadCount,
		Customers:   customers,
	}

	return ctx.JSON(serverutils.SuccessResponse("Success load dashboard", res))
}
