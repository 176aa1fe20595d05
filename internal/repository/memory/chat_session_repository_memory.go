package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/contract"

	"github.com/google/uuid"
)

// ChatSessionRepositoryMemory keeps sessions in a map guarded by a mutex.
// It mirrors the SQL implementation's visibility rules so service tests
// exercise the same predicate.
type ChatSessionRepositoryMemory struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entity.ChatSession
}

func NewChatSessionRepositoryMemory() *ChatSessionRepositoryMemory {
	return &ChatSessionRepositoryMemory{
		sessions: make(map[uuid.UUID]*entity.ChatSession),
	}
}

func (r *ChatSessionRepositoryMemory) Create(ctx context.Context, session *entity.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now()
	}
	cp := *session
	r.sessions[session.Id] = &cp
	return nil
}

func (r *ChatSessionRepositoryMemory) Update(ctx context.Context, session *entity.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.Id] = &cp
	return nil
}

func (r *ChatSessionRepositoryMemory) FindById(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func matchesQuery(s *entity.ChatSession, q contract.SessionQuery) bool {
	if s.Status == entity.SessionStatusDeleted {
		return false
	}
	if !q.Superadmin {
		if s.Suspicious {
			return false
		}
		inScope := false
		for _, id := range q.CustomerIDs {
			if id == s.CustomerId {
				inScope = true
				break
			}
		}
		if !inScope {
			return false
		}
	}
	if q.CustomerID != nil && *q.CustomerID != s.CustomerId {
		return false
	}
	if q.UnreadOnly && s.IsRead {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		hay := strings.ToLower(strings.Join([]string{
			s.Metadata.GuestName, s.Metadata.GuestEmail, s.Metadata.GuestPhone, s.VisitorId,
		}, " "))
		if !strings.Contains(hay, needle) {
			return false
		}
	}
	return true
}

func (r *ChatSessionRepositoryMemory) FindAll(ctx context.Context, q contract.SessionQuery) ([]*entity.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.ChatSession
	for _, s := range r.sessions {
		if matchesQuery(s, q) {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *ChatSessionRepositoryMemory) Count(ctx context.Context, q contract.SessionQuery) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, s := range r.sessions {
		if matchesQuery(s, q) {
			count++
		}
	}
	return count, nil
}

func (r *ChatSessionRepositoryMemory) MarkAllRead(ctx context.Context, q contract.SessionQuery) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var updated int64
	for _, s := range r.sessions {
		if matchesQuery(s, q) && !s.IsRead {
			s.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (r *ChatSessionRepositoryMemory) SetTyping(ctx context.Context, id uuid.UUID, staffTyping *bool, visitorTyping *bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil
	}
	if staffTyping != nil {
		s.StaffTyping = *staffTyping
	}
	if visitorTyping != nil {
		s.VisitorTyping = *visitorTyping
	}
	return nil
}
