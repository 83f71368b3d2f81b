package shell

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

const defaultRecordTimeout = 2 * time.Second

// Payload keys of the domain events which identify the book and person streams.
const (
	PredicateKeyISBN             = "ISBN"
	PredicateKeyPersonID         = "PersonID"
	PredicateKeyPreviousPersonID = "PreviousPersonID"
)

var (
	// ErrNilEventStore is returned by NewEventJournal without an event store.
	ErrNilEventStore = errors.New("event store must not be nil")

	// ErrUnsupportedDomainEvent is returned by Record for events which belong to no book or person stream.
	ErrUnsupportedDomainEvent = errors.New("domain event is not supported by the journal")
)

// EventJournal appends the domain events of a circulation.System to an EventStore.
//
// Every event belongs to the dynamic streams of the book and the person it names. Appends are guarded
// by the max sequence number of those streams and retried on eventstore.ErrConcurrencyConflict.
type EventJournal struct {
	store            EventStore
	correlationID    uuid.UUID
	recordTimeout    time.Duration
	retryOptions     []RetryOption
	logger           Logger
	metricsCollector MetricsCollector
}

// NewEventJournal creates an EventJournal on top of store.
// All events recorded by one journal share a correlation ID, a random one unless WithCorrelationID is given.
func NewEventJournal(store EventStore, options ...JournalOption) (*EventJournal, error) {
	if store == nil {
		return nil, ErrNilEventStore
	}

	j := &EventJournal{
		store:         store,
		correlationID: uuid.New(),
		recordTimeout: defaultRecordTimeout,
	}

	for _, option := range options {
		if err := option(j); err != nil {
			return nil, err
		}
	}

	probe := &retryConfig{}
	for _, option := range j.retryOptions {
		if err := option(probe); err != nil {
			return nil, err
		}
	}

	if j.metricsCollector != nil {
		j.retryOptions = append(j.retryOptions, WithRetryMetrics(j.metricsCollector, operationRecord))
	}

	return j, nil
}

// Record implements circulation.Journal. It gives up after the configured record timeout.
func (j *EventJournal) Record(event core.DomainEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), j.recordTimeout)
	defer cancel()

	return j.RecordContext(ctx, event)
}

// RecordContext appends event to the streams of its book and person.
func (j *EventJournal) RecordContext(ctx context.Context, event core.DomainEvent) error {
	start := time.Now()

	filter, err := streamFilterOf(event)
	if err != nil {
		return err
	}

	messageID := uuid.New()
	metadata := BuildEventMetadata(messageID, messageID, j.correlationID)

	storableEvent, err := StorableEventFrom(event, metadata)
	if err != nil {
		return err
	}

	err = RetryWithExponentialBackoff(
		ctx,
		func(ctx context.Context) error {
			_, maxSequenceNumber, err := j.store.Query(ctx, filter)
			if err != nil {
				return err
			}

			return j.store.Append(ctx, filter, maxSequenceNumber, storableEvent)
		},
		j.retryOptions...,
	)

	duration := time.Since(start)

	if err != nil {
		j.logWarn(logMsgRecordFailed, logAttrEventType, event.EventType(), logAttrError, err.Error())
		j.recordOutcome(event.EventType(), statusError, duration)

		return err
	}

	j.logDebug(
		logMsgEventRecorded,
		logAttrEventType, event.EventType(),
		logAttrMessageID, metadata.MessageID,
		logAttrDurationMS, toMilliseconds(duration),
	)
	j.recordOutcome(event.EventType(), statusSuccess, duration)

	return nil
}

// HistoryOfPerson returns all journal events naming the person, including identifier corrections from or to id.
func (j *EventJournal) HistoryOfPerson(ctx context.Context, id core.PersonIDString) (core.DomainEvents, error) {
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(
			eventstore.P(PredicateKeyPersonID, id),
			eventstore.P(PredicateKeyPreviousPersonID, id),
		).
		Finalize()

	return j.history(ctx, filter)
}

// HistoryOfBook returns all journal events naming the book.
func (j *EventJournal) HistoryOfBook(ctx context.Context, isbn core.ISBNString) (core.DomainEvents, error) {
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P(PredicateKeyISBN, isbn)).
		Finalize()

	return j.history(ctx, filter)
}

// History returns every journal event in append order.
func (j *EventJournal) History(ctx context.Context) (core.DomainEvents, error) {
	return j.history(ctx, eventstore.BuildEventFilter().MatchingAnyEvent())
}

func (j *EventJournal) history(ctx context.Context, filter eventstore.Filter) (core.DomainEvents, error) {
	storableEvents, _, err := j.store.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	return DomainEventsFrom(storableEvents)
}

// streamFilterOf matches the events of every book and person the event names.
func streamFilterOf(event core.DomainEvent) (eventstore.Filter, error) {
	var predicates []eventstore.FilterPredicate

	switch e := event.(type) {
	case core.PersonRegistered:
		predicates = personPredicates(e.PersonID)
	case core.PersonProfileUpdated:
		predicates = append(personPredicates(e.PersonID), personPredicates(e.PreviousPersonID)...)
	case core.PersonRemoved:
		predicates = personPredicates(e.PersonID)
	case core.BookAddedToCatalog:
		predicates = bookPredicates(e.ISBN)
	case core.BookRemovedFromCatalog:
		predicates = bookPredicates(e.ISBN)
	case core.BookCopyLentToPerson:
		predicates = append(bookPredicates(e.ISBN), personPredicates(e.PersonID)...)
	case core.BookCopyReturnedByPerson:
		predicates = append(bookPredicates(e.ISBN), personPredicates(e.PersonID)...)
	case core.LendingBookToPersonFailed:
		predicates = append(bookPredicates(e.ISBN), personPredicates(e.PersonID)...)
	case core.ReturningBookFromPersonFailed:
		predicates = append(bookPredicates(e.ISBN), personPredicates(e.PersonID)...)
	default:
		return eventstore.Filter{}, ErrUnsupportedDomainEvent
	}

	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(predicates[0], predicates[1:]...).
		Finalize(), nil
}

func bookPredicates(isbn core.ISBNString) []eventstore.FilterPredicate {
	return []eventstore.FilterPredicate{eventstore.P(PredicateKeyISBN, isbn)}
}

func personPredicates(id core.PersonIDString) []eventstore.FilterPredicate {
	return []eventstore.FilterPredicate{
		eventstore.P(PredicateKeyPersonID, id),
		eventstore.P(PredicateKeyPreviousPersonID, id),
	}
}
