package eventstore

import (
	"errors"
)

var (
	// ErrConcurrencyConflict is returned by Append when events matching the filter were appended concurrently.
	ErrConcurrencyConflict = errors.New("concurrency conflict, the event stream has moved")

	// ErrEmptyEventType is returned by Append for a StorableEvent without event type.
	ErrEmptyEventType = errors.New("storable event must have an event type")
)

// MaxSequenceNumberUint is a type alias for uint, representing the maximum sequence number for a "dynamic event stream".
type MaxSequenceNumberUint = uint
