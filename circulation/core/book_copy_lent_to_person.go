package core

import (
	"time"
)

// BookCopyLentToPersonEventType is the event type identifier.
const BookCopyLentToPersonEventType = "BookCopyLentToPerson"

// BookCopyLentToPerson represents when a copy of a book was lent to a person.
type BookCopyLentToPerson struct {
	ISBN       ISBNString
	PersonID   PersonIDString
	LoanDays   int
	DueDate    time.Time
	OccurredAt OccurredAtTS
}

// BuildBookCopyLentToPerson creates a new BookCopyLentToPerson event from the issued loan.
func BuildBookCopyLentToPerson(record LoanRecord, occurredAt time.Time) BookCopyLentToPerson {
	return BookCopyLentToPerson{
		ISBN:       record.ISBN(),
		PersonID:   record.PersonID(),
		LoanDays:   record.Days(),
		DueDate:    record.DueDate(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookCopyLentToPerson) EventType() string {
	return BookCopyLentToPersonEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyLentToPerson) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyLentToPerson) IsErrorEvent() bool {
	return false
}
