package memengine

import (
	"context"
	"slices"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

type sequencedEvent struct {
	sequenceNumber eventstore.MaxSequenceNumberUint
	event          eventstore.StorableEvent
}

// EventStore keeps events in memory and is safe for concurrent use.
type EventStore struct {
	mu               sync.RWMutex
	events           []sequencedEvent
	logger           eventstore.Logger
	metricsCollector eventstore.MetricsCollector
}

// NewEventStore creates an empty EventStore.
func NewEventStore(options ...Option) (*EventStore, error) {
	es := &EventStore{}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Query returns all events matching filter in append order, plus the sequence number of the last of them.
// The sequence number is 0 when nothing matches.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {
	if err := ctx.Err(); err != nil {
		es.logWarn(logMsgOperationCanceled, logAttrOperation, operationQuery, logAttrError, err.Error())
		es.recordDuration(metricQueryDuration, 0, operationQuery, statusError)

		return nil, 0, err
	}

	start := time.Now()

	es.mu.RLock()
	matching, maxSequenceNumber := es.matching(filter)
	es.mu.RUnlock()

	duration := time.Since(start)
	es.logInfo(logMsgQueryCompleted, logAttrEventCount, len(matching), logAttrDurationMS, toMilliseconds(duration))
	es.recordDuration(metricQueryDuration, duration, operationQuery, statusSuccess)
	es.recordEventCount(metricEventsQueried, len(matching), operationQuery)

	return matching, maxSequenceNumber, nil
}

// Append appends one or more events if the max sequence number for filter still equals expectedMaxSequenceNumber.
// Otherwise nothing is appended and eventstore.ErrConcurrencyConflict is returned.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	storableEvent eventstore.StorableEvent,
	storableEvents ...eventstore.StorableEvent,
) error {

	if err := ctx.Err(); err != nil {
		es.logWarn(logMsgOperationCanceled, logAttrOperation, operationAppend, logAttrError, err.Error())
		es.recordDuration(metricAppendDuration, 0, operationAppend, statusError)

		return err
	}

	allEvents := append([]eventstore.StorableEvent{storableEvent}, storableEvents...)
	for _, event := range allEvents {
		if event.EventType == "" {
			return eventstore.ErrEmptyEventType
		}
	}

	start := time.Now()

	es.mu.Lock()

	_, actualMaxSequenceNumber := es.matching(filter)
	if actualMaxSequenceNumber != expectedMaxSequenceNumber {
		es.mu.Unlock()

		es.logInfo(
			logMsgConcurrencyConflict,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
			logAttrActualSequence, actualMaxSequenceNumber,
		)
		es.recordConcurrencyConflict()
		es.recordDuration(metricAppendDuration, time.Since(start), operationAppend, statusError)

		return eventstore.ErrConcurrencyConflict
	}

	next := eventstore.MaxSequenceNumberUint(len(es.events))
	for _, event := range allEvents {
		next++
		es.events = append(es.events, sequencedEvent{sequenceNumber: next, event: cloneEvent(event)})
	}

	es.mu.Unlock()

	duration := time.Since(start)
	es.logInfo(logMsgEventsAppended, logAttrEventCount, len(allEvents), logAttrDurationMS, toMilliseconds(duration))
	es.recordDuration(metricAppendDuration, duration, operationAppend, statusSuccess)
	es.recordEventCount(metricEventsAppended, len(allEvents), operationAppend)

	return nil
}

// matching must be called with es.mu held.
func (es *EventStore) matching(filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint) {
	result := make(eventstore.StorableEvents, 0)
	var maxSequenceNumber eventstore.MaxSequenceNumberUint

	for _, se := range es.events {
		if !matches(filter, se.event) {
			continue
		}

		result = append(result, cloneEvent(se.event))
		maxSequenceNumber = se.sequenceNumber
	}

	return result, maxSequenceNumber
}

func matches(filter eventstore.Filter, event eventstore.StorableEvent) bool {
	if len(filter.Items()) == 0 {
		return true
	}

	for _, item := range filter.Items() {
		if matchesItem(item, event) {
			return true
		}
	}

	return false
}

func matchesItem(item eventstore.FilterItem, event eventstore.StorableEvent) bool {
	if len(item.EventTypes()) > 0 && !slices.Contains(item.EventTypes(), event.EventType) {
		return false
	}

	predicates := item.Predicates()
	if len(predicates) == 0 {
		return true
	}

	for _, predicate := range predicates {
		hit := payloadHas(event.PayloadJSON, predicate)

		if item.AllPredicatesMustMatch() && !hit {
			return false
		}

		if !item.AllPredicatesMustMatch() && hit {
			return true
		}
	}

	return item.AllPredicatesMustMatch()
}

// payloadHas reports whether the top-level payload field predicate.Key() is the string predicate.Val().
func payloadHas(payloadJSON []byte, predicate eventstore.FilterPredicate) bool {
	field := jsoniter.Get(payloadJSON, predicate.Key())
	if field.ValueType() != jsoniter.StringValue {
		return false
	}

	return field.ToString() == predicate.Val()
}

func cloneEvent(event eventstore.StorableEvent) eventstore.StorableEvent {
	event.PayloadJSON = slices.Clone(event.PayloadJSON)
	event.MetadataJSON = slices.Clone(event.MetadataJSON)

	return event
}
