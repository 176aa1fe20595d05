package mapper

import (
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/model"
)

type DirectoryMapper struct{}

func NewDirectoryMapper() *DirectoryMapper {
	return &DirectoryMapper{}
}

func (m *DirectoryMapper) CustomerToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	return &entity.Customer{
		Id:             c.Id,
		OrganizationId: c.OrganizationId,
		Name:           c.Name,
		Plan:           c.Plan,
	}
}

func (m *DirectoryMapper) CustomersToEntities(models []*model.Customer) []*entity.Customer {
	entities := make([]*entity.Customer, len(models))
	for i, c := range models {
		entities[i] = m.CustomerToEntity(c)
	}
	return entities
}

func (m *DirectoryMapper) MembershipToEntity(mm *model.UserMembership) *entity.UserMembership {
	if mm == nil {
		return nil
	}
	return &entity.UserMembership{
		Id:             mm.Id,
		UserId:         mm.UserId,
		Role:           mm.Role,
		OrganizationId: mm.OrganizationId,
		CustomerId:     mm.CustomerId,
	}
}

func (m *DirectoryMapper) DashboardUserToEntity(u *model.DashboardUser) *entity.DashboardUser {
	if u == nil {
		return nil
	}
	return &entity.DashboardUser{
		Id:           u.Id,
		UserId:       u.UserId,
		CustomerId:   u.CustomerId,
		Email:        u.Email,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *DirectoryMapper) TeamToEntity(t *model.Team) *entity.Team {
	if t == nil {
		return nil
	}
	return &entity.Team{
		Id:          t.Id,
		CustomerId:  t.CustomerId,
		Name:        t.Name,
		MemberCount: t.MemberCount,
	}
}

func (m *DirectoryMapper) SubscriptionToEntity(s *model.PushSubscription) *entity.PushSubscription {
	if s == nil {
		return nil
	}
	return &entity.PushSubscription{
		Id:         s.Id,
		UserId:     s.UserId,
		CustomerId: s.CustomerId,
		Endpoint:   s.Endpoint,
		P256dh:     s.P256dh,
		Auth:       s.Auth,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (m *DirectoryMapper) SubscriptionToModel(s *entity.PushSubscription) *model.PushSubscription {
	if s == nil {
		return nil
	}
	return &model.PushSubscription{
		Id:         s.Id,
		UserId:     s.UserId,
		CustomerId: s.CustomerId,
		Endpoint:   s.Endpoint,
		P256dh:     s.P256dh,
		Auth:       s.Auth,
		UpdatedAt:  s.UpdatedAt,
	}
}
