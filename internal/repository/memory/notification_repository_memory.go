package memory

import (
	"context"
	"sync"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

type NotificationRepositoryMemory struct {
	mu            sync.RWMutex
	notifications map[uuid.UUID]*entity.Notification
}

func NewNotificationRepositoryMemory() *NotificationRepositoryMemory {
	return &NotificationRepositoryMemory{
		notifications: make(map[uuid.UUID]*entity.Notification),
	}
}

func (r *NotificationRepositoryMemory) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if notification.Id == uuid.Nil {
		notification.Id = uuid.New()
	}
	cp := *notification
	r.notifications[notification.Id] = &cp
	return nil
}

func (r *NotificationRepositoryMemory) FindById(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *NotificationRepositoryMemory) FindBySession(ctx context.Context, sessionId uuid.UUID) (*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.notifications {
		if n.SessionId == sessionId {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *NotificationRepositoryMemory) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.notifications[id]; ok {
		n.Status = status
	}
	return nil
}

func (r *NotificationRepositoryMemory) UpdateStatusBySession(ctx context.Context, sessionId uuid.UUID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.SessionId == sessionId {
			n.Status = status
		}
	}
	return nil
}
