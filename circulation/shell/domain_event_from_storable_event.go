package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	payload := storableEvent.PayloadJSON

	switch storableEvent.EventType {
	case core.PersonRegisteredEventType:
		return unmarshalDomainEvent[core.PersonRegistered](payload)

	case core.PersonProfileUpdatedEventType:
		return unmarshalDomainEvent[core.PersonProfileUpdated](payload)

	case core.PersonRemovedEventType:
		return unmarshalDomainEvent[core.PersonRemoved](payload)

	case core.BookAddedToCatalogEventType:
		return unmarshalDomainEvent[core.BookAddedToCatalog](payload)

	case core.BookRemovedFromCatalogEventType:
		return unmarshalDomainEvent[core.BookRemovedFromCatalog](payload)

	case core.BookCopyLentToPersonEventType:
		return unmarshalDomainEvent[core.BookCopyLentToPerson](payload)

	case core.BookCopyReturnedByPersonEventType:
		return unmarshalDomainEvent[core.BookCopyReturnedByPerson](payload)

	case core.LendingBookToPersonFailedEventType:
		return unmarshalDomainEvent[core.LendingBookToPersonFailed](payload)

	case core.ReturningBookFromPersonFailedEventType:
		return unmarshalDomainEvent[core.ReturningBookFromPersonFailed](payload)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

// unmarshalDomainEvent decodes the payload into the event struct E. The payload mirrors the exported fields.
func unmarshalDomainEvent[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var event E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}
