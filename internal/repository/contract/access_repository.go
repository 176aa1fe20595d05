package contract

import (
	"context"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

// AccessRepository reads the membership and registry tables the grant
// resolution walks, in priority order.
type AccessRepository interface {
	IsSuperadmin(ctx context.Context, email string) (bool, error)
	FindMembershipsByUser(ctx context.Context, userId uuid.UUID) ([]*entity.UserMembership, error)
	FindDashboardUserByUserId(ctx context.Context, userId uuid.UUID) (*entity.DashboardUser, error)
	FindDashboardUserByEmail(ctx context.Context, email string) (*entity.DashboardUser, error)
}

type CustomerRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Customer, error)
	FindByOrganization(ctx context.Context, organizationId uuid.UUID) ([]*entity.Customer, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
}

// DirectoryRepository lists assignment targets (staff and teams) inside a
// tenant scope.
type DirectoryRepository interface {
	FindUsersByCustomers(ctx context.Context, customerIds []uuid.UUID) ([]*entity.DashboardUser, error)
	FindTeamsByCustomers(ctx context.Context, customerIds []uuid.UUID) ([]*entity.Team, error)
	FindTeamById(ctx context.Context, id uuid.UUID) (*entity.Team, error)
}
