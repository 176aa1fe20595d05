package contract

import (
	"context"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

type PushSubscriptionRepository interface {
	// Upsert keys on (user, endpoint): re-subscribing the same browser
	// refreshes the keys instead of duplicating the row.
	Upsert(ctx context.Context, sub *entity.PushSubscription) error
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.PushSubscription, error)
	FindByCustomer(ctx context.Context, customerId uuid.UUID) ([]*entity.PushSubscription, error)
	// DeleteByEndpoint is the self-healing path for endpoints the push
	// service reports as permanently gone.
	DeleteByEndpoint(ctx context.Context, endpoint string) error
	DeleteByUserEndpoint(ctx context.Context, userId uuid.UUID, endpoint string) error
}
