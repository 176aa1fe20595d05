package contract

import (
	"context"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// FindBySession returns the full message list ordered by timestamp
	// ascending. Message ids are not assumed ordering-stable.
	FindBySession(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.ChatMessage, error)
	CountBySession(ctx context.Context, sessionId uuid.UUID) (int64, error)
}
