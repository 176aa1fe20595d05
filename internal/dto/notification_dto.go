package dto

import (
	"time"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	Id                 uuid.UUID                  `json:"id"`
	SessionId          uuid.UUID                  `json:"session_id"`
	Type               string                     `json:"type"`
	Status             string                     `json:"status"`
	Summary            string                     `json:"summary"`
	ReservationDetails *entity.ReservationDetails `json:"reservation_details,omitempty"`
	GuestName          string                     `json:"guest_name"`
	GuestEmail         string                     `json:"guest_email,omitempty"`
	GuestPhone         string                     `json:"guest_phone,omitempty"`
	CreatedAt          time.Time                  `json:"created_at"`
}
