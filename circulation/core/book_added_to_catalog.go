package core

import (
	"time"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents when a book with its copies was added to the catalog.
type BookAddedToCatalog struct {
	ISBN        ISBNString
	Title       string
	Author      string
	TotalCopies int
	OccurredAt  OccurredAtTS
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(book *Book, occurredAt time.Time) BookAddedToCatalog {
	return BookAddedToCatalog{
		ISBN:        book.ISBN(),
		Title:       book.Title(),
		Author:      book.Author(),
		TotalCopies: book.TotalCopies(),
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookAddedToCatalog) EventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookAddedToCatalog) IsErrorEvent() bool {
	return false
}
