// Package shell connects the circulation System to an event store.
//
// It maps the domain events of circulation/core to eventstore.StorableEvent and back,
// attaches EventMetadata to every stored event, and provides EventJournal, a
// circulation.Journal which appends each recorded event with optimistic concurrency
// and retries concurrency conflicts with exponential backoff.
//
// In Hexagonal Architecture terminology, this is the infrastructure layer around the
// functional core in circulation/core.
package shell
