package events

import "time"

// Event type codes published on the bus.
const (
	TypeSessionEscalation = "session.escalation"
	TypeSessionReplied    = "session.replied"
	TypeSessionAssigned   = "session.assigned"
	TypeSessionDeleted    = "session.deleted"
	TypeSessionUpdated    = "session.updated"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "session.replied").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used across services.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewSessionEvent builds an event carrying the session and customer ids,
// which every consumer needs for scoping.
func NewSessionEvent(eventType, sessionId, customerId string, extra map[string]interface{}) BaseEvent {
	data := map[string]interface{}{
		"session_id":  sessionId,
		"customer_id": customerId,
	}
	for k, v := range extra {
		data[k] = v
	}
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
