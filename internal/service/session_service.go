package service

import (
	"context"
	"strings"
	"time"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/pkg/logger"
	"chatdesk-be/internal/pkg/mailer"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/repository/contract"
	"chatdesk-be/internal/repository/unitofwork"
	"chatdesk-be/pkg/events"

	"github.com/google/uuid"
)

// SessionFilter narrows a scoped listing.
type SessionFilter struct {
	CustomerId *uuid.UUID
	UnreadOnly bool
	Search     string
}

const defaultListLimit = 100

type ISessionService interface {
	List(ctx context.Context, grant *entity.AccessGrant, filter SessionFilter) (*dto.SessionListResponse, error)
	Messages(ctx context.Context, sessionId uuid.UUID) (*dto.MessageListResponse, error)

	MarkAsRead(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID) error
	MarkAsUnread(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID) error
	MarkAllAsRead(ctx context.Context, grant *entity.AccessGrant, customerId *uuid.UUID) (int64, error)
	Assign(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID, toUserId, toTeamId *uuid.UUID) error
	Reply(ctx context.Context, grant *entity.AccessGrant, req *dto.ReplyRequest) (*dto.ReplyResponse, error)
	Delete(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID) error

	VisitorTyping(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID) (bool, error)
	SetStaffTyping(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID, typing bool) error
}

type sessionService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	publisher    IPublisherService
	presence     IPresenceService
	logger       logger.ILogger
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisher IPublisherService,
	presence IPresenceService,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory:   uowFactory,
		emailService: emailService,
		publisher:    publisher,
		presence:     presence,
		logger:       log,
	}
}

func queryFor(grant *entity.AccessGrant, filter SessionFilter) contract.SessionQuery {
	return contract.SessionQuery{
		Superadmin:  grant.IsSuperadmin,
		CustomerIDs: grant.CustomerIds,
		CustomerID:  filter.CustomerId,
		UnreadOnly:  filter.UnreadOnly,
		Search:      filter.Search,
		Limit:       defaultListLimit,
	}
}

func (s *sessionService) List(ctx context.Context, grant *entity.AccessGrant, filter SessionFilter) (*dto.SessionListResponse, error) {
	if grant.IsEmpty() {
		return &dto.SessionListResponse{Sessions: []dto.SessionResponse{}}, nil
	}
	if filter.CustomerId != nil && !grant.CanSee(*filter.CustomerId) {
		return nil, serverutils.NewForbiddenError("customer outside your scope")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	q := queryFor(grant, filter)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx, q)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to list sessions", err)
	}

	unreadQ := q
	unreadQ.UnreadOnly = true
	unreadQ.Limit = 0
	unreadCount, err := uow.ChatSessionRepository().Count(ctx, unreadQ)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to count unread sessions", err)
	}

	resp := &dto.SessionListResponse{
		Sessions:    make([]dto.SessionResponse, 0, len(sessions)),
		UnreadCount: unreadCount,
	}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, sessionToResponse(session))
	}
	return resp, nil
}

func (s *sessionService) Messages(ctx context.Context, sessionId uuid.UUID) (*dto.MessageListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindBySession(ctx, sessionId)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to fetch messages", err)
	}

	resp := &dto.MessageListResponse{Messages: make([]dto.MessageResponse, 0, len(messages))}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, messageToResponse(m))
	}
	return resp, nil
}

// visibleSession loads a session and enforces the grant. Deleted sessions
// still resolve; the caller decides what a transition means for them.
func (s *sessionService) visibleSession(ctx context.Context, uow unitofwork.UnitOfWork, grant *entity.AccessGrant, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindById(ctx, sessionId)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to load session", err)
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}
	if !grant.CanSee(session.CustomerId) {
		return nil, serverutils.NewForbiddenError("session outside your scope")
	}
	return session, nil
}

func (s *sessionService) setRead(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID, read bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.visibleSession(ctx, uow, grant, sessionId)
	if err != nil {
		return err
	}
	if session.IsRead == read {
		return nil
	}
	session.IsRead = read
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return serverutils.NewUpstreamError("failed to update session", err)
	}
	return nil
}

func (s *sessionService) MarkAsRead(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID) error {
	return s.setRead(ctx, grant, sessionId, true)
}

func (s *sessionService) MarkAsUnread(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID) error {
	return s.setRead(ctx, grant, sessionId, false)
}

func (s *sessionService) MarkAllAsRead(ctx context.Context, grant *entity.AccessGrant, customerId *uuid.UUID) (int64, error) {
	if grant.IsEmpty() {
		return 0, nil
	}
	if customerId != nil && !grant.CanSee(*customerId) {
		return 0, serverutils.NewForbiddenError("customer outside your scope")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	q := queryFor(grant, SessionFilter{CustomerId: customerId})
	q.Limit = 0
	updated, err := uow.ChatSessionRepository().MarkAllRead(ctx, q)
	if err != nil {
		return 0, serverutils.NewUpstreamError("failed to mark sessions read", err)
	}
	return updated, nil
}

func (s *sessionService) Assign(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID, toUserId, toTeamId *uuid.UUID) error {
	if (toUserId == nil) == (toTeamId == nil) {
		return serverutils.NewValidationError("exactly one of toUserId or toTeamId is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.visibleSession(ctx, uow, grant, sessionId)
	if err != nil {
		return err
	}

	if toUserId != nil {
		target, err := uow.AccessRepository().FindDashboardUserByUserId(ctx, *toUserId)
		if err != nil {
			return serverutils.NewUpstreamError("failed to load assignee", err)
		}
		if target == nil || !grant.CanSee(target.CustomerId) {
			return serverutils.NewNotFoundError("assignee not found in your scope")
		}
		session.AssignedUserId = toUserId
		session.AssignedTeamId = nil
	} else {
		team, err := uow.DirectoryRepository().FindTeamById(ctx, *toTeamId)
		if err != nil {
			return serverutils.NewUpstreamError("failed to load team", err)
		}
		if team == nil || !grant.CanSee(team.CustomerId) {
			return serverutils.NewNotFoundError("team not found in your scope")
		}
		session.AssignedTeamId = toTeamId
		session.AssignedUserId = nil
	}

	session.UpdatedAt = time.Now()
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return serverutils.NewUpstreamError("failed to assign session", err)
	}

	s.publishEvent(ctx, events.NewSessionEvent(events.TypeSessionAssigned,
		session.Id.String(), session.CustomerId.String(), map[string]interface{}{
			"assigned_user_id": uuidString(session.AssignedUserId),
			"assigned_team_id": uuidString(session.AssignedTeamId),
		}))
	return nil
}

func (s *sessionService) Reply(ctx context.Context, grant *entity.AccessGrant, req *dto.ReplyRequest) (*dto.ReplyResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, serverutils.NewValidationError("message must not be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.visibleSession(ctx, uow, grant, req.SessionId)
	if err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		Id:         uuid.New(),
		SessionId:  session.Id,
		Role:       entity.RoleAssistant,
		SenderType: entity.SenderTypeHuman,
		Content:    text,
		Timestamp:  time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, serverutils.NewUpstreamError("failed to open transaction", err)
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
		return nil, serverutils.NewUpstreamError("failed to store reply", err)
	}

	session.NeedsHuman = false
	session.MessageCount++
	session.UpdatedAt = time.Now()
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, serverutils.NewUpstreamError("failed to update session", err)
	}

	// A human answer supersedes whatever the notification was waiting on.
	if err := uow.NotificationRepository().UpdateStatusBySession(ctx, session.Id, entity.NotificationStatusHandled); err != nil {
		s.logger.Warn("session", "failed to mark notification handled", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewUpstreamError("failed to commit reply", err)
	}

	emailSent := false
	if guestEmail := session.Metadata.GuestEmail; guestEmail != "" {
		if err := s.emailService.SendGuestReply(guestEmail, session.GuestDisplayName(), text); err != nil {
			s.logger.Warn("session", "guest reply email failed", map[string]interface{}{
				"session_id": session.Id.String(),
				"error":      err.Error(),
			})
		} else {
			emailSent = true
		}
	}

	s.publishEvent(ctx, events.NewSessionEvent(events.TypeSessionReplied,
		session.Id.String(), session.CustomerId.String(), map[string]interface{}{
			"message_id": message.Id.String(),
		}))

	resp := &dto.ReplyResponse{
		Success:   true,
		Message:   messageToResponse(message),
		EmailSent: emailSent,
	}
	return resp, nil
}

func (s *sessionService) Delete(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.visibleSession(ctx, uow, grant, sessionId)
	if err != nil {
		return err
	}
	if session.Status == entity.SessionStatusDeleted {
		return nil
	}

	session.Status = entity.SessionStatusDeleted
	session.UpdatedAt = time.Now()
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return serverutils.NewUpstreamError("failed to delete session", err)
	}

	s.publishEvent(ctx, events.NewSessionEvent(events.TypeSessionDeleted,
		session.Id.String(), session.CustomerId.String(), nil))
	return nil
}

func (s *sessionService) VisitorTyping(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.visibleSession(ctx, uow, grant, sessionId); err != nil {
		return false, err
	}
	return s.presence.VisitorTyping(ctx, sessionId)
}

func (s *sessionService) SetStaffTyping(ctx context.Context, grant *entity.AccessGrant, sessionId uuid.UUID, typing bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.visibleSession(ctx, uow, grant, sessionId); err != nil {
		return err
	}
	return s.presence.SetStaffTyping(ctx, sessionId, typing)
}

func (s *sessionService) publishEvent(ctx context.Context, event events.BaseEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSessionEvent(ctx, event); err != nil {
		s.logger.Warn("session", "event publish failed", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func sessionToResponse(session *entity.ChatSession) dto.SessionResponse {
	return dto.SessionResponse{
		Id:             session.Id,
		CustomerId:     session.CustomerId,
		VisitorId:      session.VisitorId,
		Status:         session.Status,
		IsRead:         session.IsRead,
		NeedsHuman:     session.NeedsHuman,
		AssignedUserId: session.AssignedUserId,
		AssignedTeamId: session.AssignedTeamId,
		GuestName:      session.GuestDisplayName(),
		GuestEmail:     session.Metadata.GuestEmail,
		GuestPhone:     session.Metadata.GuestPhone,
		MessageCount:   session.MessageCount,
		SessionStart:   session.SessionStart,
		UpdatedAt:      session.UpdatedAt,
	}
}

func messageToResponse(m *entity.ChatMessage) dto.MessageResponse {
	return dto.MessageResponse{
		Id:         m.Id,
		SessionId:  m.SessionId,
		Role:       m.Role,
		SenderType: m.SenderType,
		Content:    m.Content,
		Timestamp:  m.Timestamp,
	}
}
