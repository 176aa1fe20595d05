package service

import (
	"context"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INotificationService interface {
	// BySession fetches the session's notification, flipping unread to read
	// as a side effect of opening it. Returns nil when the session has none.
	BySession(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID) (*dto.NotificationResponse, error)

	// MarkHandled moves the notification to handled. Status only moves
	// forward; handling a handled notification is a no-op.
	MarkHandled(ctx context.Context, grant *entity.AccessGrant, id uuid.UUID) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory) INotificationService {
	return &notificationService{uowFactory: uowFactory}
}

func (s *notificationService) checkScope(ctx context.Context, uow unitofwork.UnitOfWork, grant *entity.AccessGrant, sessionId uuid.UUID) error {
	session, err := uow.ChatSessionRepository().FindById(ctx, sessionId)
	if err != nil {
		return serverutils.NewUpstreamError("failed to load session", err)
	}
	if session == nil {
		return serverutils.NewNotFoundError("session not found")
	}
	if !grant.CanSee(session.CustomerId) {
		return serverutils.NewForbiddenError("session outside your scope")
	}
	return nil
}

func (s *notificationService) BySession(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID) (*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.checkScope(ctx, uow, grant, sessionId); err != nil {
		return nil, err
	}

	notification, err := uow.NotificationRepository().FindBySession(ctx, sessionId)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to load notification", err)
	}
	if notification == nil {
		return nil, nil
	}

	if notification.Status == entity.NotificationStatusUnread {
		if err := uow.NotificationRepository().UpdateStatus(ctx, notification.Id, entity.NotificationStatusRead); err != nil {
			return nil, serverutils.NewUpstreamError("failed to mark notification read", err)
		}
		notification.Status = entity.NotificationStatusRead
	}

	return notificationToResponse(notification), nil
}

func (s *notificationService) MarkHandled(ctx context.Context, grant *entity.AccessGrant, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notification, err := uow.NotificationRepository().FindById(ctx, id)
	if err != nil {
		return serverutils.NewUpstreamError("failed to load notification", err)
	}
	if notification == nil {
		return serverutils.NewNotFoundError("notification not found")
	}
	if err := s.checkScope(ctx, uow, grant, notification.SessionId); err != nil {
		return err
	}
	if notification.Status == entity.NotificationStatusHandled {
		return nil
	}
	if err := uow.NotificationRepository().UpdateStatus(ctx, notification.Id, entity.NotificationStatusHandled); err != nil {
		return serverutils.NewUpstreamError("failed to mark notification handled", err)
	}
	return nil
}

func notificationToResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		Id:                 n.Id,
		SessionId:          n.SessionId,
		Type:               n.Type,
		Status:             n.Status,
		Summary:            n.Summary,
		ReservationDetails: n.ReservationDetails,
		GuestName:          n.GuestName,
		GuestEmail:         n.GuestEmail,
		GuestPhone:         n.GuestPhone,
		CreatedAt:          n.CreatedAt,
	}
}
