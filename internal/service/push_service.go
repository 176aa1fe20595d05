package service

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/pkg/logger"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/repository/unitofwork"
	"chatdesk-be/pkg/webpush"

	"github.com/google/uuid"
)

type IPushService interface {
	// Send fans one notification out to every subscription of the target.
	// Exactly one of userId/customerId must be set. Deliveries run
	// concurrently, are never retried, and a permanently-gone endpoint has
	// its subscription pruned.
	Send(ctx context.Context, req *dto.SendPushRequest) (*dto.SendPushResponse, error)

	Subscribe(ctx context.Context, userId uuid.UUID, req *dto.SubscribeRequest) error
	Unsubscribe(ctx context.Context, userId uuid.UUID, req *dto.UnsubscribeRequest) error
}

type pushService struct {
	uowFactory unitofwork.RepositoryFactory
	sender     webpush.Sender
	logger     logger.ILogger
}

func NewPushService(uowFactory unitofwork.RepositoryFactory, sender webpush.Sender, log logger.ILogger) IPushService {
	return &pushService{
		uowFactory: uowFactory,
		sender:     sender,
		logger:     log,
	}
}

type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

func (s *pushService) Send(ctx context.Context, req *dto.SendPushRequest) (*dto.SendPushResponse, error) {
	if (req.UserId == nil) == (req.CustomerId == nil) {
		return nil, serverutils.NewValidationError("exactly one of userId or customerId is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	var (
		subs []*entity.PushSubscription
		err  error
	)
	if req.UserId != nil {
		subs, err = uow.PushSubscriptionRepository().FindByUser(ctx, *req.UserId)
	} else {
		subs, err = uow.PushSubscriptionRepository().FindByCustomer(ctx, *req.CustomerId)
	}
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to resolve subscriptions", err)
	}
	if len(subs) == 0 {
		return &dto.SendPushResponse{Success: true}, nil
	}

	payload, err := json.Marshal(pushPayload{
		Title: req.Title,
		Body:  req.Body,
		URL:   req.URL,
		Tag:   req.Tag,
	})
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to encode payload", err)
	}

	var (
		wg   sync.WaitGroup
		sent int64
	)
	for _, sub := range subs {
		wg.Add(1)
		go func(sub *entity.PushSubscription) {
			defer wg.Done()
			gone, err := s.sender.Send(ctx, webpush.Subscription{
				Endpoint: sub.Endpoint,
				P256dh:   sub.P256dh,
				Auth:     sub.Auth,
			}, payload)
			if gone {
				// The push service told us this endpoint no longer exists.
				if delErr := uow.PushSubscriptionRepository().DeleteByEndpoint(ctx, sub.Endpoint); delErr != nil {
					s.logger.Warn("push", "failed to prune dead endpoint", map[string]interface{}{
						"endpoint": sub.Endpoint,
						"error":    delErr.Error(),
					})
				}
				return
			}
			if err != nil {
				s.logger.Warn("push", "delivery failed", map[string]interface{}{
					"endpoint": sub.Endpoint,
					"error":    err.Error(),
				})
				return
			}
			atomic.AddInt64(&sent, 1)
		}(sub)
	}
	wg.Wait()

	s.logger.Info("push", "fan-out complete", map[string]interface{}{
		"sent":  atomic.LoadInt64(&sent),
		"total": len(subs),
	})

	return &dto.SendPushResponse{
		Success: true,
		Sent:    int(atomic.LoadInt64(&sent)),
		Total:   len(subs),
	}, nil
}

func (s *pushService) Subscribe(ctx context.Context, userId uuid.UUID, req *dto.SubscribeRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub := &entity.PushSubscription{
		UserId:   userId,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	}
	if req.CustomerId != nil {
		sub.CustomerId = *req.CustomerId
	} else if legacy, err := uow.AccessRepository().FindDashboardUserByUserId(ctx, userId); err == nil && legacy != nil {
		sub.CustomerId = legacy.CustomerId
	}

	if err := uow.PushSubscriptionRepository().Upsert(ctx, sub); err != nil {
		return serverutils.NewUpstreamError("failed to store subscription", err)
	}
	return nil
}

func (s *pushService) Unsubscribe(ctx context.Context, userId uuid.UUID, req *dto.UnsubscribeRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PushSubscriptionRepository().DeleteByUserEndpoint(ctx, userId, req.Endpoint); err != nil {
		return serverutils.NewUpstreamError("failed to remove subscription", err)
	}
	return nil
}
