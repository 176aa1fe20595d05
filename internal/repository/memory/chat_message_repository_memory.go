package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

type ChatMessageRepositoryMemory struct {
	mu       sync.RWMutex
	messages map[uuid.UUID]*entity.ChatMessage
}

func NewChatMessageRepositoryMemory() *ChatMessageRepositoryMemory {
	return &ChatMessageRepositoryMemory{
		messages: make(map[uuid.UUID]*entity.ChatMessage),
	}
}

func (r *ChatMessageRepositoryMemory) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	cp := *message
	r.messages[message.Id] = &cp
	return nil
}

func (r *ChatMessageRepositoryMemory) FindById(ctx context.Context, id uuid.UUID) (*entity.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *ChatMessageRepositoryMemory) FindBySession(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.ChatMessage
	for _, m := range r.messages {
		if m.SessionId == sessionId {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *ChatMessageRepositoryMemory) CountBySession(ctx context.Context, sessionId uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, m := range r.messages {
		if m.SessionId == sessionId {
			count++
		}
	}
	return count, nil
}
