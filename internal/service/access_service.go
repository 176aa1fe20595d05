package service

import (
	"context"
	"strings"
	"time"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/pkg/logger"
	"chatdesk-be/internal/repository/contract"
	"chatdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IAccessService interface {
	// ResolveGrant computes the visibility scope for a staff user.
	// Resolution order: superadmin registry, then org/tenant memberships,
	// then the legacy dashboard_users mapping, then the empty grant.
	ResolveGrant(ctx context.Context, userId uuid.UUID, email string) (*entity.AccessGrant, error)

	// SessionQueryFor translates a grant into the listing predicate shared
	// by dashboard load, counts and bulk updates.
	SessionQueryFor(grant *entity.AccessGrant) contract.SessionQuery

	// Invalidate drops a cached grant, e.g. after a membership change.
	Invalidate(userId uuid.UUID)
}

type accessService struct {
	uowFactory      unitofwork.RepositoryFactory
	superadminEmail string
	cache           *gocache.Cache
	logger          logger.ILogger
}

const grantCacheTTL = 30 * time.Second

// NewAccessService builds the grant resolver. superadminEmail is the optional
// bootstrap identity from config; it is honored alongside the superadmins
// table and may be empty.
func NewAccessService(uowFactory unitofwork.RepositoryFactory, superadminEmail string, log logger.ILogger) IAccessService {
	return &accessService{
		uowFactory:      uowFactory,
		superadminEmail: superadminEmail,
		cache:           gocache.New(grantCacheTTL, time.Minute),
		logger:          log,
	}
}

func (s *accessService) ResolveGrant(ctx context.Context, userId uuid.UUID, email string) (*entity.AccessGrant, error) {
	if cached, found := s.cache.Get(userId.String()); found {
		grant := cached.(entity.AccessGrant)
		return &grant, nil
	}

	grant, err := s.resolve(ctx, userId, email)
	if err != nil {
		return nil, err
	}

	s.cache.Set(userId.String(), *grant, gocache.DefaultExpiration)
	return grant, nil
}

func (s *accessService) resolve(ctx context.Context, userId uuid.UUID, email string) (*entity.AccessGrant, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	grant := &entity.AccessGrant{UserId: userId}

	if email != "" {
		isSuper := s.superadminEmail != "" && strings.EqualFold(email, s.superadminEmail)
		if !isSuper {
			fromTable, err := uow.AccessRepository().IsSuperadmin(ctx, email)
			if err != nil {
				return nil, err
			}
			isSuper = fromTable
		}
		if isSuper {
			grant.IsSuperadmin = true
			grant.Role = entity.RoleOwner
			return grant, nil
		}
	}

	memberships, err := uow.AccessRepository().FindMembershipsByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	// An org-level membership (customer_id null) wins outright: it owns the
	// role and the scope is every customer under the organization, no matter
	// what tenant rows also exist for the user.
	for _, m := range memberships {
		if m.CustomerId != nil || m.OrganizationId == nil {
			continue
		}
		grant.Role = m.Role
		grant.OrganizationId = m.OrganizationId
		customers, err := uow.CustomerRepository().FindByOrganization(ctx, *m.OrganizationId)
		if err != nil {
			return nil, err
		}
		for _, c := range customers {
			grant.CustomerIds = append(grant.CustomerIds, c.Id)
		}
		return grant, nil
	}

	if len(memberships) > 0 {
		seen := make(map[uuid.UUID]bool)
		for _, m := range memberships {
			if m.CustomerId == nil {
				continue
			}
			if grant.Role == "" {
				grant.Role = m.Role
			}
			if !seen[*m.CustomerId] {
				seen[*m.CustomerId] = true
				grant.CustomerIds = append(grant.CustomerIds, *m.CustomerId)
			}
		}
		if len(grant.CustomerIds) > 0 {
			return grant, nil
		}
	}

	// Legacy fallback: pre-membership deployments keyed access on a single
	// dashboard_users row.
	legacy, err := uow.AccessRepository().FindDashboardUserByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if legacy != nil {
		grant.Role = legacy.Role
		grant.CustomerIds = []uuid.UUID{legacy.CustomerId}
		return grant, nil
	}

	s.logger.Info("access", "no grant matched, resolving empty scope", map[string]interface{}{
		"user_id": userId.String(),
	})
	grant.Role = ""
	grant.CustomerIds = nil
	return grant, nil
}

func (s *accessService) SessionQueryFor(grant *entity.AccessGrant) contract.SessionQuery {
	return contract.SessionQuery{
		Superadmin:  grant.IsSuperadmin,
		CustomerIDs: grant.CustomerIds,
	}
}

func (s *accessService) Invalidate(userId uuid.UUID) {
	s.cache.Delete(userId.String())
}
