package contract

import (
	"context"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

// SessionQuery is the listing predicate shared by the dashboard list,
// markAllAsRead, and the scoped counts. The same predicate that renders a
// list must drive any bulk action on it.
type SessionQuery struct {
	Superadmin  bool
	CustomerIDs []uuid.UUID // visibility scope; ignored when Superadmin
	CustomerID  *uuid.UUID  // active dashboard tenant filter
	UnreadOnly  bool
	Search      string
	Limit       int
}

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	Update(ctx context.Context, session *entity.ChatSession) error
	// FindById resolves regardless of status so soft-deleted sessions stay
	// addressable; returns (nil, nil) when the id is unknown.
	FindById(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error)
	FindAll(ctx context.Context, q SessionQuery) ([]*entity.ChatSession, error)
	Count(ctx context.Context, q SessionQuery) (int64, error)
	// MarkAllRead flips is_read on every session matching the query and
	// reports how many rows changed.
	MarkAllRead(ctx context.Context, q SessionQuery) (int64, error)
	SetTyping(ctx context.Context, id uuid.UUID, staffTyping *bool, visitorTyping *bool) error
}
