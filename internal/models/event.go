package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published to the events topic.
const (
	EventRoomCreated    = "room.created"
	EventRoomUpdated    = "room.updated"
	EventRoomDeleted    = "room.deleted"
	EventUserRegistered = "user.registered"
	EventUserUpdated    = "user.updated"
	EventUserDeleted    = "user.deleted"
)

// Event represents a domain change notification
type Event struct {
	EventID    uuid.UUID       `json:"event_id"`    // Unique event identifier
	Type       string          `json:"type"`        // One of the Event* constants
	EntityID   uuid.UUID       `json:"entity_id"`   // Room or user the event is about
	Payload    json.RawMessage `json:"payload"`     // Entity snapshot, may be null
	OccurredAt time.Time       `json:"occurred_at"` // Publication time
}
