package service

import (
	"context"
	"fmt"
	"time"

	"chatdesk-be/internal/pkg/logger"
	"chatdesk-be/internal/repository/unitofwork"
	"chatdesk-be/pkg/poller"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// IPresenceService holds the ephemeral typing flags. Backed by Redis keys
// with a TTL slightly above the idle window so a flag that is no longer
// refreshed clears itself; without Redis the flags live on the session row.
type IPresenceService interface {
	SetStaffTyping(ctx context.Context, sessionId uuid.UUID, typing bool) error
	SetVisitorTyping(ctx context.Context, sessionId uuid.UUID, typing bool) error
	StaffTyping(ctx context.Context, sessionId uuid.UUID) (bool, error)
	VisitorTyping(ctx context.Context, sessionId uuid.UUID) (bool, error)
}

type presenceService struct {
	rdb        *redis.Client
	uowFactory unitofwork.RepositoryFactory
	ttl        time.Duration
	logger     logger.ILogger
}

func NewPresenceService(rdb *redis.Client, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IPresenceService {
	return &presenceService{
		rdb:        rdb,
		uowFactory: uowFactory,
		ttl:        poller.DefaultTypingIdle + time.Second,
		logger:     log,
	}
}

func staffKey(id uuid.UUID) string   { return fmt.Sprintf("typing:staff:%s", id) }
func visitorKey(id uuid.UUID) string { return fmt.Sprintf("typing:visitor:%s", id) }

func (s *presenceService) SetStaffTyping(ctx context.Context, sessionId uuid.UUID, typing bool) error {
	if s.rdb != nil {
		return s.setKey(ctx, staffKey(sessionId), typing)
	}
	t := typing
	return s.uowFactory.NewUnitOfWork(ctx).ChatSessionRepository().SetTyping(ctx, sessionId, &t, nil)
}

func (s *presenceService) SetVisitorTyping(ctx context.Context, sessionId uuid.UUID, typing bool) error {
	if s.rdb != nil {
		return s.setKey(ctx, visitorKey(sessionId), typing)
	}
	t := typing
	return s.uowFactory.NewUnitOfWork(ctx).ChatSessionRepository().SetTyping(ctx, sessionId, nil, &t)
}

func (s *presenceService) StaffTyping(ctx context.Context, sessionId uuid.UUID) (bool, error) {
	if s.rdb != nil {
		return s.getKey(ctx, staffKey(sessionId))
	}
	session, err := s.uowFactory.NewUnitOfWork(ctx).ChatSessionRepository().FindById(ctx, sessionId)
	if err != nil || session == nil {
		return false, err
	}
	return session.StaffTyping, nil
}

func (s *presenceService) VisitorTyping(ctx context.Context, sessionId uuid.UUID) (bool, error) {
	if s.rdb != nil {
		return s.getKey(ctx, visitorKey(sessionId))
	}
	session, err := s.uowFactory.NewUnitOfWork(ctx).ChatSessionRepository().FindById(ctx, sessionId)
	if err != nil || session == nil {
		return false, err
	}
	return session.VisitorTyping, nil
}

func (s *presenceService) setKey(ctx context.Context, key string, typing bool) error {
	if !typing {
		return s.rdb.Del(ctx, key).Err()
	}
	return s.rdb.Set(ctx, key, "1", s.ttl).Err()
}

func (s *presenceService) getKey(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		s.logger.Warn("presence", "redis read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false, nil
	}
	return n > 0, nil
}
