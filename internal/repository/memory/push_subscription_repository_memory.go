package memory

import (
	"context"
	"sync"
	"time"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

type PushSubscriptionRepositoryMemory struct {
	mu   sync.RWMutex
	subs []*entity.PushSubscription
}

func NewPushSubscriptionRepositoryMemory() *PushSubscriptionRepositoryMemory {
	return &PushSubscriptionRepositoryMemory{}
}

func (r *PushSubscriptionRepositoryMemory) Upsert(ctx context.Context, sub *entity.PushSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub.UpdatedAt = time.Now()
	for _, existing := range r.subs {
		if existing.UserId == sub.UserId && existing.Endpoint == sub.Endpoint {
			existing.P256dh = sub.P256dh
			existing.Auth = sub.Auth
			existing.CustomerId = sub.CustomerId
			existing.UpdatedAt = sub.UpdatedAt
			*sub = *existing
			return nil
		}
	}
	if sub.Id == uuid.Nil {
		sub.Id = uuid.New()
	}
	cp := *sub
	r.subs = append(r.subs, &cp)
	return nil
}

func (r *PushSubscriptionRepositoryMemory) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.PushSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.PushSubscription
	for _, s := range r.subs {
		if s.UserId == userId {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *PushSubscriptionRepositoryMemory) FindByCustomer(ctx context.Context, customerId uuid.UUID) ([]*entity.PushSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.PushSubscription
	for _, s := range r.subs {
		if s.CustomerId == customerId {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *PushSubscriptionRepositoryMemory) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.subs[:0]
	for _, s := range r.subs {
		if s.Endpoint != endpoint {
			kept = append(kept, s)
		}
	}
	r.subs = kept
	return nil
}

func (r *PushSubscriptionRepositoryMemory) DeleteByUserEndpoint(ctx context.Context, userId uuid.UUID, endpoint string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.subs[:0]
	for _, s := range r.subs {
		if s.UserId != userId || s.Endpoint != endpoint {
			kept = append(kept, s)
		}
	}
	r.subs = kept
	return nil
}
