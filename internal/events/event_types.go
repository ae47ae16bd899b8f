package events

import "time"

// EventType enumerates account lifecycle events.
type EventType string

const (
	EventUserRegistered      EventType = "user.registered"
	EventUserPasswordChanged EventType = "user.password_changed"
	EventUserDeleted         EventType = "user.deleted"
)

// Event carries a lifecycle notification about a user account.
type Event struct {
	Type       EventType
	UserID     int64
	OccurredAt time.Time
	Payload    map[string]any
}

// NewEvent builds an event stamped with the current time.
func NewEvent(eventType EventType, userID int64, payload map[string]any) Event {
	return Event{
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now(),
		Payload:    payload,
	}
}
