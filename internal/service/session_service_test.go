package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/repository/memory"
	"chatdesk-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubMailer struct {
	err   error
	sends []string
}

func (m *stubMailer) SendGuestReply(toEmail, guestName, replyText string) error {
	if m.err != nil {
		return m.err
	}
	m.sends = append(m.sends, toEmail)
	return nil
}

type capturingPublisher struct {
	published []events.Event
}

func (p *capturingPublisher) PublishSessionEvent(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

func newTestSessionService(t *testing.T) (ISessionService, *memory.UnitOfWorkMemory, *stubMailer, *capturingPublisher) {
	t.Helper()
	uow := memory.NewUnitOfWorkMemory()
	mail := &stubMailer{}
	pub := &capturingPublisher{}
	presence := NewPresenceService(nil, uow, nopLogger{})
	svc := NewSessionService(uow, mail, pub, presence, nopLogger{})
	return svc, uow, mail, pub
}

func grantFor(customerIds ...uuid.UUID) *entity.AccessGrant {
	return &entity.AccessGrant{
		UserId:      uuid.New(),
		Role:        entity.RoleAdmin,
		CustomerIds: customerIds,
	}
}

func seedSession(t *testing.T, uow *memory.UnitOfWorkMemory, customerId uuid.UUID, mutate func(*entity.ChatSession)) *entity.ChatSession {
	t.Helper()
	session := &entity.ChatSession{
		Id:           uuid.New(),
		CustomerId:   customerId,
		VisitorId:    "visitor_test",
		Status:       entity.SessionStatusActive,
		IsRead:       true,
		SessionStart: time.Now().Add(-time.Hour),
		UpdatedAt:    time.Now(),
	}
	if mutate != nil {
		mutate(session)
	}
	if err := uow.Sessions.Create(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return session
}

func TestMarkAsReadUnreadInverse(t *testing.T) {
	svc, uow, _, _ := newTestSessionService(t)
	customerId := uuid.New()
	grant := grantFor(customerId)
	session := seedSession(t, uow, customerId, nil)
	ctx := context.Background()

	assert.NoError(t, svc.MarkAsUnread(ctx, grant, session.Id))
	got, _ := uow.Sessions.FindById(ctx, session.Id)
	assert.False(t, got.IsRead)

	assert.NoError(t, svc.MarkAsRead(ctx, grant, session.Id))
	got, _ = uow.Sessions.FindById(ctx, session.Id)
	assert.True(t, got.IsRead)

	// Repeating a transition is a no-op, not an error.
	assert.NoError(t, svc.MarkAsRead(ctx, grant, session.Id))
	got, _ = uow.Sessions.FindById(ctx, session.Id)
	assert.True(t, got.IsRead)
}

func TestTransitionsOutsideScope(t *testing.T) {
	svc, uow, _, _ := newTestSessionService(t)
	mine, theirs := uuid.New(), uuid.New()
	grant := grantFor(mine)
	session := seedSession(t, uow, theirs, nil)
	ctx := context.Background()

	err := svc.MarkAsRead(ctx, grant, session.Id)
	assert.True(t, serverutils.IsForbidden(err), "expected forbidden, got %v", err)

	err = svc.MarkAsRead(ctx, grant, uuid.New())
	assert.True(t, serverutils.IsNotFound(err), "expected not found, got %v", err)
}

func TestReplyAppendsAndClearsEscalation(t *testing.T) {
	svc, uow, mail, pub := newTestSessionService(t)
	customerId := uuid.New()
	grant := grantFor(customerId)
	session := seedSession(t, uow, customerId, func(s *entity.ChatSession) {
		s.NeedsHuman = true
		s.IsRead = false
		s.MessageCount = 2
		s.Metadata.GuestEmail = "guest@example.com"
		s.Metadata.GuestName = "Dana"
	})
	notification := &entity.Notification{
		SessionId: session.Id,
		Type:      entity.NotificationTypeQuestion,
		Status:    entity.NotificationStatusUnread,
	}
	assert.NoError(t, uow.Notifications.Create(context.Background(), notification))
	ctx := context.Background()

	res, err := svc.Reply(ctx, grant, &dto.ReplyRequest{SessionId: session.Id, Message: "On our way!"})
	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.EmailSent)
	assert.Equal(t, entity.RoleAssistant, res.Message.Role)
	assert.Equal(t, entity.SenderTypeHuman, res.Message.SenderType)

	got, _ := uow.Sessions.FindById(ctx, session.Id)
	assert.False(t, got.NeedsHuman)
	assert.False(t, got.IsRead, "replying does not touch the read flag")
	assert.Equal(t, 3, got.MessageCount)

	messages, _ := uow.Messages.FindBySession(ctx, session.Id)
	assert.Len(t, messages, 1)
	assert.Equal(t, "On our way!", messages[0].Content)

	n, _ := uow.Notifications.FindBySession(ctx, session.Id)
	assert.Equal(t, entity.NotificationStatusHandled, n.Status)

	assert.Equal(t, []string{"guest@example.com"}, mail.sends)
	if assert.Len(t, pub.published, 1) {
		assert.Equal(t, events.TypeSessionReplied, pub.published[0].EventType())
	}
}

func TestReplyEmailFailureIsNotFatal(t *testing.T) {
	svc, uow, mail, _ := newTestSessionService(t)
	customerId := uuid.New()
	grant := grantFor(customerId)
	session := seedSession(t, uow, customerId, func(s *entity.ChatSession) {
		s.Metadata.GuestEmail = "guest@example.com"
	})
	mail.err = errors.New("smtp down")

	res, err := svc.Reply(context.Background(), grant, &dto.ReplyRequest{SessionId: session.Id, Message: "hello"})
	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.EmailSent)
}

func TestReplyWithoutGuestEmail(t *testing.T) {
	svc, uow, mail, _ := newTestSessionService(t)
	customerId := uuid.New()
	grant := grantFor(customerId)
	session := seedSession(t, uow, customerId, nil)

	res, err := svc.Reply(context.Background(), grant, &dto.ReplyRequest{SessionId: session.Id, Message: "hello"})
	assert.NoError(t, err)
	assert.False(t, res.EmailSent)
	assert.Empty(t, mail.sends, "no send should be attempted without an address")
}

func TestReplyRejectsEmptyMessage(t *testing.T) {
	svc, uow, _, _ := newTestSessionService(t)
	customerId := uuid.New()
	grant := grantFor(customerId)
	session := seedSession(t, uow, customerId, nil)

	_, err := svc.Reply(context.Background(), grant, &dto.ReplyRequest{SessionId: session.Id, Message: "   "})
	assert.True(t, serverutils.IsValidation(err), "expected validation error, got %v", err)

	messages, _ := uow.Messages.FindBySession(context.Background(), session.Id)
	assert.Empty(t, messages)
}

func TestSoftDeleteHidesFromListingButKeepsMessages(t *testing.T) {
	svc, uow, _, _ := newTestSessionService(t)
	customerId := uuid.New()
	grant := grantFor(customerId)
	session := seedSession(t, uow, customerId, nil)
	ctx := context.Background()

	msg := &entity.ChatMessage{SessionId: session.Id, Role: entity.RoleUser, Content: "hi"}
	assert.NoError(t, uow.Messages.Create(ctx, msg))

	assert.NoError(t, svc.Delete(ctx, grant, session.Id))
	// Deleting twice stays a success.
	assert.NoError(t, svc.Delete(ctx, grant, session.Id))

	list, err := svc.List(ctx, grant, SessionFilter{})
	assert.NoError(t, err)
	assert.Empty(t, list.Sessions)

	// The transcript survives the soft delete.
	messages, err := svc.Messages(ctx, session.Id)
	assert.NoError(t, err)
	assert.Len(t, messages.Messages, 1)

	got, _ := uow.Sessions.FindById(ctx, session.Id)
	assert.Equal(t, entity.SessionStatusDeleted, got.Status)
}

func TestListScopeExclusion(t *testing.T) {
	svc, uow, _, _ := newTestSessionService(t)
	mine, theirs := uuid.New(), uuid.New()
	grant := grantFor(mine)
	visible := seedSession(t, uow, mine, func(s *entity.ChatSession) { s.IsRead = false })
	seedSession(t, uow, theirs, func(s *entity.ChatSession) { s.IsRead = false })
	seedSession(t, uow, mine, func(s *entity.ChatSession) { s.Suspicious = true })
	ctx := context.Background()

	for _, filter := range []SessionFilter{
		{},
		{UnreadOnly: true},
		{Search: "visitor_test"},
		{CustomerId: &mine},
	} {
		list, err := svc.List(ctx, grant, filter)
		assert.NoError(t, err)
		for _, s := range list.Sessions {
			assert.Equal(t, mine, s.CustomerId)
			assert.NotEqual(t, entity.SessionStatusDeleted, s.Status)
		}
	}

	list, _ := svc.List(ctx, grant, SessionFilter{})
	if assert.Len(t, list.Sessions, 1) {
		assert.Equal(t, visible.Id, list.Sessions[0].Id)
	}
	assert.Equal(t, int64(1), list.UnreadCount)
}

func TestListEmptyGrant(t *testing.T) {
	svc, uow, _, _ := newTestSessionService(t)
	seedSession(t, uow, uuid.New(), nil)

	empty := &entity.AccessGrant{UserId: uuid.New()}
	list, err := svc.List(context.Background(), empty, SessionFilter{})
	assert.NoError(t, err)
	assert.Empty(t, list.Sessions)
	assert.Zero(t, list.UnreadCount)
}

func TestSuperadminSeesSuspicious(t *testing.T) {
	svc, uow, _, _ := newTestSessionService(t)
	customerId := uuid.New()
	seedSession(t, uow, customerId, func(s *entity.ChatSession) { s.Suspicious = true })

	super := &entity.AccessGrant{UserId: uuid.New(), IsSuperadmin: true, Role: entity.RoleOwner}
	list, err := svc.List(context.Background(), super, SessionFilter{})
	assert.NoError(t, err)
	assert.Len(t, list.Sessions, 1)
}

func TestMarkAllAsReadScopedToTenant(t *testing.T) {
	svc, uow, _, _ := newTestSessionService(t)
	customerA, customerB, customerC := uuid.New(), uuid.New(), uuid.New()
	grant := grantFor(customerA, customerB)
	seedSession(t, uow, customerA, func(s *entity.ChatSession) { s.IsRead = false })
	seedSession(t, uow, customerA, func(s *entity.ChatSession) { s.IsRead = false })
	seedSession(t, uow, customerB, func(s *entity.ChatSession) { s.IsRead = false })
	outside := seedSession(t, uow, customerC, func(s *entity.ChatSession) { s.IsRead = false })
	ctx := context.Background()

	// Filtered to one tenant: only its sessions flip.
	updated, err := svc.MarkAllAsRead(ctx, grant, &customerA)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	// Unfiltered: the rest of the grant flips, the outsider never does.
	updated, err = svc.MarkAllAsRead(ctx, grant, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	got, _ := uow.Sessions.FindById(ctx, outside.Id)
	assert.False(t, got.IsRead)

	// A tenant outside the grant is rejected outright.
	_, err = svc.MarkAllAsRead(ctx, grant, &customerC)
	assert.True(t, serverutils.IsForbidden(err))
}

func TestAssignRequiresExactlyOneTarget(t *testing.T) {
	svc, uow, _, _ := newTestSessionService(t)
	customerId := uuid.New()
	grant := grantFor(customerId)
	session := seedSession(t, uow, customerId, nil)
	userId, teamId := uuid.New(), uuid.New()
	ctx := context.Background()

	err := svc.Assign(ctx, grant, session.Id, nil, nil)
	assert.True(t, serverutils.IsValidation(err))

	err = svc.Assign(ctx, grant, session.Id, &userId, &teamId)
	assert.True(t, serverutils.IsValidation(err))
}

func TestAssignToTeamClearsUser(t *testing.T) {
	svc, uow, _, pub := newTestSessionService(t)
	customerId := uuid.New()
	grant := grantFor(customerId)

	staff := &entity.DashboardUser{Id: uuid.New(), UserId: uuid.New(), CustomerId: customerId, Email: "a@b.c", Role: "member"}
	uow.Access.DashboardUsers = append(uow.Access.DashboardUsers, staff)
	team := &entity.Team{Id: uuid.New(), CustomerId: customerId, Name: "Front Desk"}
	uow.Directory.Teams = append(uow.Directory.Teams, team)

	session := seedSession(t, uow, customerId, nil)
	ctx := context.Background()

	assert.NoError(t, svc.Assign(ctx, grant, session.Id, &staff.UserId, nil))
	got, _ := uow.Sessions.FindById(ctx, session.Id)
	assert.Equal(t, &staff.UserId, got.AssignedUserId)
	assert.Nil(t, got.AssignedTeamId)

	assert.NoError(t, svc.Assign(ctx, grant, session.Id, nil, &team.Id))
	got, _ = uow.Sessions.FindById(ctx, session.Id)
	assert.Nil(t, got.AssignedUserId)
	assert.Equal(t, &team.Id, got.AssignedTeamId)

	assert.Len(t, pub.published, 2)
}

func TestAssignTargetOutsideScope(t *testing.T) {
	svc, uow, _, _ := newTestSessionService(t)
	customerId, otherCustomer := uuid.New(), uuid.New()
	grant := grantFor(customerId)

	outsider := &entity.DashboardUser{Id: uuid.New(), UserId: uuid.New(), CustomerId: otherCustomer, Email: "x@y.z", Role: "member"}
	uow.Access.DashboardUsers = append(uow.Access.DashboardUsers, outsider)

	session := seedSession(t, uow, customerId, nil)

	err := svc.Assign(context.Background(), grant, session.Id, &outsider.UserId, nil)
	assert.True(t, serverutils.IsNotFound(err), "expected not found, got %v", err)
}

func TestStaffTypingRoundTrip(t *testing.T) {
	svc, uow, _, _ := newTestSessionService(t)
	customerId := uuid.New()
	grant := grantFor(customerId)
	session := seedSession(t, uow, customerId, nil)
	ctx := context.Background()

	assert.NoError(t, svc.SetStaffTyping(ctx, grant, session.Id, true))
	got, _ := uow.Sessions.FindById(ctx, session.Id)
	assert.True(t, got.StaffTyping)

	typing, err := svc.VisitorTyping(ctx, grant, session.Id)
	assert.NoError(t, err)
	assert.False(t, typing)

	assert.NoError(t, svc.SetStaffTyping(ctx, grant, session.Id, false))
	got, _ = uow.Sessions.FindById(ctx, session.Id)
	assert.False(t, got.StaffTyping)
}
