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

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DirectoryMapper
}

func NewCustomerRepository(db *gorm.DB) contract.CustomerRepository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mapper.NewDirectoryMapper(),
	}
}

func (r *CustomerRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var m model.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CustomerToEntity(&m), nil
}

func (r *CustomerRepositoryImpl) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Customer, error) {
	if len(ids) == 0 {
		return []*entity.Customer{}, nil
	}
	var models []*model.Customer
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Scopes(scope.OrderByName).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CustomersToEntities(models), nil
}

func (r *CustomerRepositoryImpl) FindByOrganization(ctx context.Context, organizationId uuid.UUID) ([]*entity.Customer, error) {
	var models []*model.Customer
	if err := r.db.WithContext(ctx).Where("organization_id = ?", organizationId).Scopes(scope.OrderByName).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CustomersToEntities(models), nil
}

func (r *CustomerRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	var models []*model.Customer
	if err := r.db.WithContext(ctx).Scopes(scope.OrderByName).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CustomersToEntities(models), nil
}
