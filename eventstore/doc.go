// Package eventstore provides the abstractions the circulation journal is stored with:
// the Filter to select events, the StorableEvent DTO and the sentinel errors of the engines.
//
// Engines (see memengine) keep events in an append-only sequence and implement two operations:
//
//   - Query returns the events matching a Filter together with the highest matching sequence number
//   - Append writes events if the highest sequence number for the same Filter has not moved since
//
// Together they give optimistic concurrency for a "dynamic event stream" that is defined by the
// filter instead of a fixed stream ID.
//
// Common usage pattern:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyPredicateOf(eventstore.P("ISBN", isbn), eventstore.P("PersonID", personID)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	if err != nil {
//		// handle error
//	}
//
//	newEvent, err := eventstore.BuildStorableEvent(eventType, time.Now(), payload, metadata)
//	err = store.Append(ctx, filter, maxSeq, newEvent)
//	if errors.Is(err, eventstore.ErrConcurrencyConflict) {
//		// query again and retry
//	}
package eventstore
