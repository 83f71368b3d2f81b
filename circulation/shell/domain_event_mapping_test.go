package shell_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
	"github.com/AntonStoeckl/library-circulation-go/circulation/shell"
	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

var occurredAt = core.ToOccurredAt(time.Date(2026, time.March, 10, 10, 30, 0, 0, time.UTC))

func Test_DomainEventFrom_MapsEveryJournalEvent(t *testing.T) {
	dueDate := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)

	events := core.DomainEvents{
		core.PersonRegistered{PersonID: "12345678-5", FullName: "Ana Rojas", Kind: core.KindStudent, OccurredAt: occurredAt},
		core.PersonProfileUpdated{PersonID: "19876543-0", PreviousPersonID: "12345678-5", FullName: "Ana Rojas", OccurredAt: occurredAt},
		core.PersonRemoved{PersonID: "12345678-5", OccurredAt: occurredAt},
		core.BookAddedToCatalog{ISBN: "B1", Title: "Title", Author: "Author", TotalCopies: 2, OccurredAt: occurredAt},
		core.BookRemovedFromCatalog{ISBN: "B1", OccurredAt: occurredAt},
		core.BookCopyLentToPerson{ISBN: "B1", PersonID: "12345678-5", LoanDays: 10, DueDate: dueDate, OccurredAt: occurredAt},
		core.BookCopyReturnedByPerson{ISBN: "B1", PersonID: "12345678-5", DaysLate: 2, LateFee: 2000, OccurredAt: occurredAt},
		core.LendingBookToPersonFailed{ISBN: "B1", PersonID: "12345678-5", FailureInfo: "no copies available", OccurredAt: occurredAt},
		core.ReturningBookFromPersonFailed{ISBN: "B1", PersonID: "12345678-5", FailureInfo: "person not found", OccurredAt: occurredAt},
	}

	for _, event := range events {
		t.Run(event.EventType(), func(t *testing.T) {
			// arrange
			storableEvent, err := shell.StorableEventWithEmptyMetadataFrom(event)
			require.NoError(t, err)

			// act
			mapped, err := shell.DomainEventFrom(storableEvent)

			// assert
			require.NoError(t, err)
			assert.Equal(t, event.EventType(), storableEvent.EventType)
			assert.Equal(t, event, mapped)
			assert.True(t, occurredAt.Equal(mapped.HasOccurredAt()))
		})
	}
}

func Test_StorableEventFrom_WritesMetadata(t *testing.T) {
	// arrange
	messageID, correlationID := uuid.New(), uuid.New()
	metadata := shell.BuildEventMetadata(messageID, messageID, correlationID)
	event := core.BookRemovedFromCatalog{ISBN: "B1", OccurredAt: occurredAt}

	// act
	storableEvent, err := shell.StorableEventFrom(event, metadata)
	require.NoError(t, err)

	mappedMetadata, err := shell.EventMetadataFrom(storableEvent)

	// assert
	require.NoError(t, err)
	assert.Equal(t, messageID.String(), mappedMetadata.MessageID)
	assert.Equal(t, messageID.String(), mappedMetadata.CausationID)
	assert.Equal(t, correlationID.String(), mappedMetadata.CorrelationID)
	assert.Equal(t, occurredAt, storableEvent.OccurredAt)
}

func Test_DomainEventFrom_UnknownEventType(t *testing.T) {
	storableEvent, err := eventstore.BuildStorableEventWithEmptyMetadata("SomethingElse", occurredAt, []byte(`{}`))
	require.NoError(t, err)

	_, err = shell.DomainEventFrom(storableEvent)

	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventFailed)
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventUnknownEventType)
}

func Test_DomainEventFrom_BrokenPayload(t *testing.T) {
	storableEvent := eventstore.StorableEvent{
		EventType:   core.PersonRemovedEventType,
		PayloadJSON: []byte(`{"PersonID": 42}`),
	}

	_, err := shell.DomainEventFrom(storableEvent)

	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventFailed)
}

func Test_EventMetadataFrom_BrokenMetadata(t *testing.T) {
	_, err := shell.EventMetadataFrom(eventstore.StorableEvent{MetadataJSON: []byte(`[`)})

	assert.ErrorIs(t, err, shell.ErrMappingToEventMetadataFailed)
}
