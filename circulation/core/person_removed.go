package core

import (
	"time"
)

// PersonRemovedEventType is the event type identifier.
const PersonRemovedEventType = "PersonRemoved"

// PersonRemoved represents when a person was removed from the registered users.
type PersonRemoved struct {
	PersonID   PersonIDString
	OccurredAt OccurredAtTS
}

// BuildPersonRemoved creates a new PersonRemoved event.
func BuildPersonRemoved(personID PersonIDString, occurredAt time.Time) PersonRemoved {
	return PersonRemoved{
		PersonID:   personID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e PersonRemoved) EventType() string {
	return PersonRemovedEventType
}

// HasOccurredAt returns when this event occurred.
func (e PersonRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PersonRemoved) IsErrorEvent() bool {
	return false
}
