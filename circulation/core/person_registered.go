package core

import (
	"time"
)

// PersonRegisteredEventType is the event type identifier.
const PersonRegisteredEventType = "PersonRegistered"

// PersonRegistered represents when a person was registered as library user.
type PersonRegistered struct {
	PersonID   PersonIDString
	FullName   string
	Kind       PersonKind
	OccurredAt OccurredAtTS
}

// BuildPersonRegistered creates a new PersonRegistered event.
func BuildPersonRegistered(person Person, occurredAt time.Time) PersonRegistered {
	return PersonRegistered{
		PersonID:   person.ID(),
		FullName:   person.FullName(),
		Kind:       person.Kind(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e PersonRegistered) EventType() string {
	return PersonRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e PersonRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PersonRegistered) IsErrorEvent() bool {
	return false
}
