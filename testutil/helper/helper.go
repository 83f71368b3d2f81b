package helper

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/nationalid"
)

// Clock is a controllable clock for tests, safe for concurrent use.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a Clock standing at now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the current test time. Pass c.Now where a core.Clock is expected.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// AdvanceDays moves the clock forward by whole calendar days.
func (c *Clock) AdvanceDays(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.AddDate(0, 0, days)
}

// GivenValidPersonID returns a well-formed identifier with a correct check character.
// Different seeds yield different identifiers.
func GivenValidPersonID(t testing.TB, seed int) string {
	t.Helper()

	body := fmt.Sprintf("%08d", 10000000+seed)
	check, err := nationalid.CheckCharacter(body)
	require.NoError(t, err, "error in arranging test data")

	return body + "-" + string(check)
}
