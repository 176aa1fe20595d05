package service

import (
	"context"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IAdminService serves the directory listings behind the admin surface:
// visible customers for the dashboard filter, and the user/team assignment
// targets inside the caller's scope.
type IAdminService interface {
	Customers(ctx context.Context, grant *entity.AccessGrant) ([]dto.CustomerResponse, error)
	Users(ctx context.Context, grant *entity.AccessGrant, customerId *uuid.UUID) ([]dto.AdminUserResponse, error)
	Teams(ctx context.Context, grant *entity.AccessGrant, customerId *uuid.UUID) ([]dto.TeamResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{uowFactory: uowFactory}
}

func (s *adminService) Customers(ctx context.Context, grant *entity.AccessGrant) ([]dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	var (
		customers []*entity.Customer
		err       error
	)
	if grant.IsSuperadmin {
		customers, err = uow.CustomerRepository().FindAll(ctx)
	} else {
		customers, err = uow.CustomerRepository().FindByIds(ctx, grant.CustomerIds)
	}
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to list customers", err)
	}

	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.CustomerResponse{Id: c.Id, Name: c.Name, Plan: c.Plan})
	}
	return out, nil
}

func (s *adminService) scopedCustomerIds(ctx context.Context, uow unitofwork.UnitOfWork, grant *entity.AccessGrant, customerId *uuid.UUID) ([]uuid.UUID, error) {
	if customerId != nil {
		if !grant.CanSee(*customerId) {
			return nil, serverutils.NewForbiddenError("customer outside your scope")
		}
		return []uuid.UUID{*customerId}, nil
	}
	if grant.IsSuperadmin {
		customers, err := uow.CustomerRepository().FindAll(ctx)
		if err != nil {
			return nil, serverutils.NewUpstreamError("failed to list customers", err)
		}
		ids := make([]uuid.UUID, 0, len(customers))
		for _, c := range customers {
			ids = append(ids, c.Id)
		}
		return ids, nil
	}
	return grant.CustomerIds, nil
}

func (s *adminService) Users(ctx context.Context, grant *entity.AccessGrant, customerId *uuid.UUID) ([]dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ids, err := s.scopedCustomerIds(ctx, uow, grant, customerId)
	if err != nil {
		return nil, err
	}

	users, err := uow.DirectoryRepository().FindUsersByCustomers(ctx, ids)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to list users", err)
	}

	out := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.AdminUserResponse{
			Id:         u.Id,
			UserId:     u.UserId,
			CustomerId: u.CustomerId,
			Email:      u.Email,
			Role:       u.Role,
		})
	}
	return out, nil
}

func (s *adminService) Teams(ctx context.Context, grant *entity.AccessGrant, customerId *uuid.UUID) ([]dto.TeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ids, err := s.scopedCustomerIds(ctx, uow, grant, customerId)
	if err != nil {
		return nil, err
	}

	teams, err := uow.DirectoryRepository().FindTeamsByCustomers(ctx, ids)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to list teams", err)
	}

	out := make([]dto.TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, dto.TeamResponse{
			Id:          t.Id,
			CustomerId:  t.CustomerId,
			Name:        t.Name,
			MemberCount: t.MemberCount,
		})
	}
	return out, nil
}
