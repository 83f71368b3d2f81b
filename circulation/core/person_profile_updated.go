package core

import (
	"time"
)

// PersonProfileUpdatedEventType is the event type identifier.
const PersonProfileUpdatedEventType = "PersonProfileUpdated"

// PersonProfileUpdated represents when the profile of a registered person was edited.
// PreviousPersonID differs from PersonID when the identifier was corrected.
type PersonProfileUpdated struct {
	PersonID         PersonIDString
	PreviousPersonID PersonIDString
	FullName         string
	OccurredAt       OccurredAtTS
}

// BuildPersonProfileUpdated creates a new PersonProfileUpdated event.
func BuildPersonProfileUpdated(
	previousPersonID PersonIDString,
	person Person,
	occurredAt time.Time,
) PersonProfileUpdated {

	return PersonProfileUpdated{
		PersonID:         person.ID(),
		PreviousPersonID: previousPersonID,
		FullName:         person.FullName(),
		OccurredAt:       ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e PersonProfileUpdated) EventType() string {
	return PersonProfileUpdatedEventType
}

// HasOccurredAt returns when this event occurred.
func (e PersonProfileUpdated) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PersonProfileUpdated) IsErrorEvent() bool {
	return false
}
