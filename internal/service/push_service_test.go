package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/repository/memory"
	"chatdesk-be/pkg/webpush"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeSender marks configured endpoints as gone or failing; everything
// else succeeds.
type fakeSender struct {
	mu       sync.Mutex
	gone     map[string]bool
	failing  map[string]bool
	attempts []string
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		gone:    make(map[string]bool),
		failing: make(map[string]bool),
	}
}

func (f *fakeSender) Send(ctx context.Context, sub webpush.Subscription, payload []byte) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts = append(f.attempts, sub.Endpoint)
	if f.gone[sub.Endpoint] {
		return true, nil
	}
	if f.failing[sub.Endpoint] {
		return false, errors.New("push service unavailable")
	}
	return false, nil
}

func newTestPushService(t *testing.T) (IPushService, *memory.UnitOfWorkMemory, *fakeSender) {
	t.Helper()
	uow := memory.NewUnitOfWorkMemory()
	sender := newFakeSender()
	return NewPushService(uow, sender, nopLogger{}), uow, sender
}

func seedSubscription(t *testing.T, uow *memory.UnitOfWorkMemory, userId, customerId uuid.UUID, endpoint string) {
	t.Helper()
	err := uow.Subscriptions.Upsert(context.Background(), &entity.PushSubscription{
		UserId:     userId,
		CustomerId: customerId,
		Endpoint:   endpoint,
		P256dh:     "p256dh-key",
		Auth:       "auth-key",
	})
	assert.NoError(t, err)
}

func TestSendPrunesGoneEndpoints(t *testing.T) {
	svc, uow, sender := newTestPushService(t)
	customerId := uuid.New()
	userId := uuid.New()

	endpoints := []string{
		"https://push.example/a",
		"https://push.example/b",
		"https://push.example/c",
		"https://push.example/d",
	}
	for _, ep := range endpoints {
		seedSubscription(t, uow, userId, customerId, ep)
	}
	sender.gone["https://push.example/b"] = true
	sender.gone["https://push.example/d"] = true

	res, err := svc.Send(context.Background(), &dto.SendPushRequest{
		Title:      "Guest needs a human",
		Body:       "Dana is waiting",
		CustomerId: &customerId,
	})
	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 4, res.Total)

	remaining, _ := uow.Subscriptions.FindByCustomer(context.Background(), customerId)
	assert.Len(t, remaining, 2)
	for _, sub := range remaining {
		assert.False(t, sender.gone[sub.Endpoint], "gone endpoint %s should have been pruned", sub.Endpoint)
	}
}

func TestSendTransientFailureKeepsSubscription(t *testing.T) {
	svc, uow, sender := newTestPushService(t)
	userId := uuid.New()
	customerId := uuid.New()
	seedSubscription(t, uow, userId, customerId, "https://push.example/flaky")
	sender.failing["https://push.example/flaky"] = true

	res, err := svc.Send(context.Background(), &dto.SendPushRequest{
		Title:  "Chat assigned to you",
		Body:   "x",
		UserId: &userId,
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, 1, res.Total)

	// Transient failures are not retried and not pruned.
	remaining, _ := uow.Subscriptions.FindByUser(context.Background(), userId)
	assert.Len(t, remaining, 1)
	assert.Len(t, sender.attempts, 1)
}

func TestSendRequiresExactlyOneTarget(t *testing.T) {
	svc, _, sender := newTestPushService(t)
	userId, customerId := uuid.New(), uuid.New()

	_, err := svc.Send(context.Background(), &dto.SendPushRequest{Title: "t", Body: "b"})
	assert.True(t, serverutils.IsValidation(err))

	_, err = svc.Send(context.Background(), &dto.SendPushRequest{
		Title: "t", Body: "b", UserId: &userId, CustomerId: &customerId,
	})
	assert.True(t, serverutils.IsValidation(err))

	assert.Empty(t, sender.attempts, "no delivery may be attempted for an invalid target")
}

func TestSendZeroSubscriptionsIsSuccess(t *testing.T) {
	svc, _, sender := newTestPushService(t)
	userId := uuid.New()

	res, err := svc.Send(context.Background(), &dto.SendPushRequest{Title: "t", Body: "b", UserId: &userId})
	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.Zero(t, res.Sent)
	assert.Zero(t, res.Total)
	assert.Empty(t, sender.attempts)
}

func TestSubscribeUpsertsOnSameEndpoint(t *testing.T) {
	svc, uow, _ := newTestPushService(t)
	userId := uuid.New()
	ctx := context.Background()

	req := &dto.SubscribeRequest{
		Endpoint: "https://push.example/one",
		Keys:     dto.SubscriptionKeys{P256dh: "k1", Auth: "a1"},
	}
	assert.NoError(t, svc.Subscribe(ctx, userId, req))

	req.Keys = dto.SubscriptionKeys{P256dh: "k2", Auth: "a2"}
	assert.NoError(t, svc.Subscribe(ctx, userId, req))

	subs, _ := uow.Subscriptions.FindByUser(ctx, userId)
	if assert.Len(t, subs, 1, "re-registering must replace, not accumulate") {
		assert.Equal(t, "k2", subs[0].P256dh)
	}

	assert.NoError(t, svc.Unsubscribe(ctx, userId, &dto.UnsubscribeRequest{Endpoint: "https://push.example/one"}))
	subs, _ = uow.Subscriptions.FindByUser(ctx, userId)
	assert.Empty(t, subs)
}
