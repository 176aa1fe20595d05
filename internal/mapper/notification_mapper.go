package mapper

import (
	"encoding/json"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/model"

	"gorm.io/datatypes"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}

	var details *entity.ReservationDetails
	if len(n.ReservationDetails) > 0 {
		var d entity.ReservationDetails
		if err := json.Unmarshal(n.ReservationDetails, &d); err == nil {
			details = &d
		}
	}

	return &entity.Notification{
		Id:                 n.Id,
		SessionId:          n.SessionId,
		Type:               n.Type,
		Status:             n.Status,
		Summary:            n.Summary,
		ReservationDetails: details,
		GuestName:          n.GuestName,
		GuestEmail:         n.GuestEmail,
		GuestPhone:         n.GuestPhone,
		CreatedAt:          n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}

	var details datatypes.JSON
	if n.ReservationDetails != nil {
		raw, _ := json.Marshal(n.ReservationDetails)
		details = datatypes.JSON(raw)
	}

	return &model.Notification{
		Id:                 n.Id,
		SessionId:          n.SessionId,
		Type:               n.Type,
		Status:             n.Status,
		Summary:            n.Summary,
		ReservationDetails: details,
		GuestName:          n.GuestName,
		GuestEmail:         n.GuestEmail,
		GuestPhone:         n.GuestPhone,
		CreatedAt:          n.CreatedAt,
	}
}
