package service

import (
	"context"
	"testing"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotificationReadOnOpenAndMonotonicStatus(t *testing.T) {
	uow := memory.NewUnitOfWorkMemory()
	svc := NewNotificationService(uow)
	customerId := uuid.New()
	grant := grantFor(customerId)
	ctx := context.Background()

	session := seedSession(t, uow, customerId, nil)
	notification := &entity.Notification{
		SessionId: session.Id,
		Type:      entity.NotificationTypeReservation,
		Status:    entity.NotificationStatusUnread,
		Summary:   "Table for four",
	}
	assert.NoError(t, uow.Notifications.Create(ctx, notification))

	// Opening flips unread to read.
	res, err := svc.BySession(ctx, grant, session.Id)
	assert.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusRead, res.Status)

	// Opening again does not regress.
	res, err = svc.BySession(ctx, grant, session.Id)
	assert.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusRead, res.Status)

	assert.NoError(t, svc.MarkHandled(ctx, grant, notification.Id))
	stored, _ := uow.Notifications.FindById(ctx, notification.Id)
	assert.Equal(t, entity.NotificationStatusHandled, stored.Status)

	// Handled stays handled.
	assert.NoError(t, svc.MarkHandled(ctx, grant, notification.Id))
	res, err = svc.BySession(ctx, grant, session.Id)
	assert.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusHandled, res.Status)
}

func TestNotificationScopeAndMissing(t *testing.T) {
	uow := memory.NewUnitOfWorkMemory()
	svc := NewNotificationService(uow)
	mine, theirs := uuid.New(), uuid.New()
	grant := grantFor(mine)
	ctx := context.Background()

	session := seedSession(t, uow, mine, nil)

	// A session without a notification yields nothing, not an error.
	res, err := svc.BySession(ctx, grant, session.Id)
	assert.NoError(t, err)
	assert.Nil(t, res)

	foreign := seedSession(t, uow, theirs, nil)
	_, err = svc.BySession(ctx, grant, foreign.Id)
	assert.True(t, serverutils.IsForbidden(err))

	err = svc.MarkHandled(ctx, grant, uuid.New())
	assert.True(t, serverutils.IsNotFound(err))
}
