package implementation

import (
	"context"
	"errors"
	"strings"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/mapper"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DirectoryMapper
}

func NewAccessRepository(db *gorm.DB) contract.AccessRepository {
	return &AccessRepositoryImpl{
		db:     db,
		mapper: mapper.NewDirectoryMapper(),
	}
}

func (r *AccessRepositoryImpl) IsSuperadmin(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Superadmin{}).
		Where("lower(email) = ?", strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *AccessRepositoryImpl) FindMembershipsByUser(ctx context.Context, userId uuid.UUID) ([]*entity.UserMembership, error) {
	var models []*model.UserMembership
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Find(&models).Error; err != nil {
		return nil, err
	}
	memberships := make([]*entity.UserMembership, 0, len(models))
	for _, m := range models {
		memberships = append(memberships, r.mapper.MembershipToEntity(m))
	}
	return memberships, nil
}

func (r *AccessRepositoryImpl) FindDashboardUserByUserId(ctx context.Context, userId uuid.UUID) (*entity.DashboardUser, error) {
	var m model.DashboardUser
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DashboardUserToEntity(&m), nil
}

func (r *AccessRepositoryImpl) FindDashboardUserByEmail(ctx context.Context, email string) (*entity.DashboardUser, error) {
	var m model.DashboardUser
	if err := r.db.WithContext(ctx).Where("lower(email) = ?", strings.ToLower(email)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DashboardUserToEntity(&m), nil
}
