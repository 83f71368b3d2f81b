package core

import (
	"time"
)

// ISBNString represents an ISBN identifier
type ISBNString = string

// PersonIDString represents a national identifier of a person
type PersonIDString = string

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// Clock supplies the current time. A nil Clock means time.Now.
type Clock func() time.Time

// Now returns the current time of c, falling back to time.Now for a nil Clock.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}

	return c()
}

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// dateOf returns midnight of t's calendar day in t's location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b, negative when b lies before a.
// Both dates are compared by their own calendar day, so DST shifts do not matter.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	until := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)

	return int(until.Sub(from) / (24 * time.Hour))
}
