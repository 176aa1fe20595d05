package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTypeReservation = "reservation"
	NotificationTypeComplaint   = "complaint"
	NotificationTypeQuestion    = "question"

	NotificationStatusUnread  = "unread"
	NotificationStatusRead    = "read"
	NotificationStatusHandled = "handled"
)

type ReservationDetails struct {
	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	PartySize       int    `json:"party_size,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// Notification is the derived alert tied 1:1 to a session event.
// Status moves forward (unread -> read -> handled); a staff reply may
// jump straight to handled.
type Notification struct {
	Id                 uuid.UUID
	SessionId          uuid.UUID
	Type               string
	Status             string
	Summary            string
	ReservationDetails *ReservationDetails
	GuestName          string
	GuestEmail         string
	GuestPhone         string
	CreatedAt          time.Time
}
