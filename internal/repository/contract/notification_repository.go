package contract

import (
	"context"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	FindBySession(ctx context.Context, sessionId uuid.UUID) (*entity.Notification, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	// UpdateStatusBySession is the reply-path shortcut: forces the session's
	// notification (if any) to the given status without loading it first.
	UpdateStatusBySession(ctx context.Context, sessionId uuid.UUID, status string) error
}
