package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
)

func Test_DomainEvents_NormalizeOccurredAt(t *testing.T) {
	// arrange
	local := time.FixedZone("UTC-4", -4*60*60)
	occurredAt := time.Date(2026, time.March, 10, 9, 15, 30, 123456789, local)

	student, err := core.NewStudent("Ana", validID, core.GenderFemale, "Engineering")
	require.NoError(t, err)

	book, err := core.NewBook("B1", "Title", "Author", 1, 1, "")
	require.NoError(t, err)

	record, err := core.NewLoanRecord("B1", validID, 10, fixedClock(occurredAt))
	require.NoError(t, err)

	events := core.DomainEvents{
		core.BuildPersonRegistered(student, occurredAt),
		core.BuildPersonProfileUpdated(validID, student, occurredAt),
		core.BuildPersonRemoved(validID, occurredAt),
		core.BuildBookAddedToCatalog(book, occurredAt),
		core.BuildBookRemovedFromCatalog("B1", occurredAt),
		core.BuildBookCopyLentToPerson(record, occurredAt),
		core.BuildBookCopyReturnedByPerson("B1", validID, -2, 0, occurredAt),
		core.BuildLendingBookToPersonFailed("B1", validID, "book not found", occurredAt),
		core.BuildReturningBookFromPersonFailed("B1", validID, "person not found", occurredAt),
	}

	expected := time.Date(2026, time.March, 10, 13, 15, 30, 123456000, time.UTC)

	for _, event := range events {
		// assert
		assert.Equal(t, expected, event.HasOccurredAt(), event.EventType())
		assert.Equal(t, time.UTC, event.HasOccurredAt().Location(), event.EventType())
	}
}

func Test_DomainEvents_ErrorEventsAreFlagged(t *testing.T) {
	now := time.Now()

	assert.True(t, core.BuildLendingBookToPersonFailed("B1", validID, "x", now).IsErrorEvent())
	assert.True(t, core.BuildReturningBookFromPersonFailed("B1", validID, "x", now).IsErrorEvent())
	assert.False(t, core.BuildPersonRemoved(validID, now).IsErrorEvent())
	assert.False(t, core.BuildBookRemovedFromCatalog("B1", now).IsErrorEvent())
}

func Test_BuildBookCopyReturnedByPerson_ClampsEarlyReturns(t *testing.T) {
	// act
	event := core.BuildBookCopyReturnedByPerson("B1", validID, -3, 0, time.Now())

	// assert
	assert.Equal(t, 0, event.DaysLate)
	assert.Equal(t, core.BookCopyReturnedByPersonEventType, event.EventType())
}

func Test_BuildBookCopyLentToPerson_CarriesLoanTerms(t *testing.T) {
	// arrange
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	record, err := core.NewLoanRecord("B1", validID, 10, fixedClock(now))
	require.NoError(t, err)

	// act
	event := core.BuildBookCopyLentToPerson(record, now)

	// assert
	assert.Equal(t, "B1", event.ISBN)
	assert.Equal(t, validID, event.PersonID)
	assert.Equal(t, 10, event.LoanDays)
	assert.Equal(t, record.DueDate(), event.DueDate)
}
