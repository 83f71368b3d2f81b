// Package memengine implements an in-process event store engine.
//
// It offers the same Query/Append contract as a database backed engine, including the
// optimistic concurrency check on the filter's max sequence number, but keeps the events
// in memory for the lifetime of the EventStore. It backs the circulation journal.
package memengine
