package implementation

import (
	"context"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/mapper"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PushSubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DirectoryMapper
}

func NewPushSubscriptionRepository(db *gorm.DB) contract.PushSubscriptionRepository {
	return &PushSubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewDirectoryMapper(),
	}
}

// Upsert keys on (user_id, endpoint) so re-registering a browser refreshes
// the keys instead of accumulating rows.
func (r *PushSubscriptionRepositoryImpl) Upsert(ctx context.Context, sub *entity.PushSubscription) error {
	m := r.mapper.SubscriptionToModel(sub)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "customer_id", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*sub = *r.mapper.SubscriptionToEntity(m)
	return nil
}

func (r *PushSubscriptionRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.PushSubscription, error) {
	var models []*model.PushSubscription
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.subscriptionsToEntities(models), nil
}

func (r *PushSubscriptionRepositoryImpl) FindByCustomer(ctx context.Context, customerId uuid.UUID) ([]*entity.PushSubscription, error) {
	var models []*model.PushSubscription
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerId).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.subscriptionsToEntities(models), nil
}

func (r *PushSubscriptionRepositoryImpl) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	return r.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		Delete(&model.PushSubscription{}).Error
}

func (r *PushSubscriptionRepositoryImpl) DeleteByUserEndpoint(ctx context.Context, userId uuid.UUID, endpoint string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userId, endpoint).
		Delete(&model.PushSubscription{}).Error
}

func (r *PushSubscriptionRepositoryImpl) subscriptionsToEntities(models []*model.PushSubscription) []*entity.PushSubscription {
	entities := make([]*entity.PushSubscription, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.mapper.SubscriptionToEntity(m))
	}
	return entities
}
