package mapper

import (
	"encoding/json"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/model"

	"gorm.io/datatypes"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) SessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var meta entity.GuestMetadata
	if len(s.Metadata) > 0 {
		// Malformed metadata degrades to an empty contact block.
		_ = json.Unmarshal(s.Metadata, &meta)
	}

	return &entity.ChatSession{
		Id:             s.Id,
		CustomerId:     s.CustomerId,
		VisitorId:      s.VisitorId,
		Status:         s.Status,
		IsRead:         s.IsRead,
		NeedsHuman:     s.NeedsHuman,
		AssignedUserId: s.AssignedUserId,
		AssignedTeamId: s.AssignedTeamId,
		Suspicious:     s.Suspicious,
		Metadata:       meta,
		StaffTyping:    s.StaffTyping,
		VisitorTyping:  s.VisitorTyping,
		SessionStart:   s.SessionStart,
		UpdatedAt:      s.UpdatedAt,
		MessageCount:   s.MessageCount,
	}
}

func (m *SessionMapper) SessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	meta, _ := json.Marshal(s.Metadata)

	return &model.ChatSession{
		Id:             s.Id,
		CustomerId:     s.CustomerId,
		VisitorId:      s.VisitorId,
		Status:         s.Status,
		IsRead:         s.IsRead,
		NeedsHuman:     s.NeedsHuman,
		AssignedUserId: s.AssignedUserId,
		AssignedTeamId: s.AssignedTeamId,
		Suspicious:     s.Suspicious,
		Metadata:       datatypes.JSON(meta),
		StaffTyping:    s.StaffTyping,
		VisitorTyping:  s.VisitorTyping,
		SessionStart:   s.SessionStart,
		UpdatedAt:      s.UpdatedAt,
		MessageCount:   s.MessageCount,
	}
}

func (m *SessionMapper) SessionsToEntities(models []*model.ChatSession) []*entity.ChatSession {
	entities := make([]*entity.ChatSession, len(models))
	for i, s := range models {
		entities[i] = m.SessionToEntity(s)
	}
	return entities
}

func (m *SessionMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:         msg.Id,
		SessionId:  msg.SessionId,
		Role:       msg.Role,
		SenderType: msg.SenderType,
		Content:    msg.Content,
		Timestamp:  msg.Timestamp,
	}
}

func (m *SessionMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:         msg.Id,
		SessionId:  msg.SessionId,
		Role:       msg.Role,
		SenderType: msg.SenderType,
		Content:    msg.Content,
		Timestamp:  msg.Timestamp,
	}
}

func (m *SessionMapper) MessagesToEntities(models []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
