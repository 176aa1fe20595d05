package implementation

import (
	"context"
	"errors"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/mapper"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/repository/contract"
	"chatdesk-be/internal/repository/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DirectoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DirectoryMapper
}

func NewDirectoryRepository(db *gorm.DB) contract.DirectoryRepository {
	return &DirectoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewDirectoryMapper(),
	}
}

func (r *DirectoryRepositoryImpl) FindUsersByCustomers(ctx context.Context, customerIds []uuid.UUID) ([]*entity.DashboardUser, error) {
	if len(customerIds) == 0 {
		return []*entity.DashboardUser{}, nil
	}
	var models []*model.DashboardUser
	if err := r.db.WithContext(ctx).Where("customer_id IN ?", customerIds).Find(&models).Error; err != nil {
		return nil, err
	}
	users := make([]*entity.DashboardUser, 0, len(models))
	for _, m := range models {
		users = append(users, r.mapper.DashboardUserToEntity(m))
	}
	return users, nil
}

func (r *DirectoryRepositoryImpl) FindTeamsByCustomers(ctx context.Context, customerIds []uuid.UUID) ([]*entity.Team, error) {
	if len(customerIds) == 0 {
		return []*entity.Team{}, nil
	}
	var models []*model.Team
	if err := r.db.WithContext(ctx).Where("customer_id IN ?", customerIds).Scopes(scope.OrderByName).Find(&models).Error; err != nil {
		return nil, err
	}
	teams := make([]*entity.Team, 0, len(models))
	for _, m := range models {
		teams = append(teams, r.mapper.TeamToEntity(m))
	}
	return teams, nil
}

func (r *DirectoryRepositoryImpl) FindTeamById(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	var m model.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TeamToEntity(&m), nil
}
