// Package clock provides the wall clock and creation-timestamp ids used by the stores.
package clock

import (
	"sync"
	"time"

	"biaresh/internal/domain/service"
)

type systemClock struct {
	mu     sync.Mutex
	now    func() time.Time
	lastID int64
}

// New returns a clock backed by time.Now
func New() service.Clock {
	return NewWithSource(time.Now)
}

// NewWithSource returns a clock reading time from now; tests pass a fixed source.
func NewWithSource(now func() time.Time) service.Clock {
	return &systemClock{now: now}
}

func (c *systemClock) Now() time.Time {
	return c.now()
}

// NextID returns the current Unix millisecond, bumped past the previous id
// when two records are created within the same millisecond.
func (c *systemClock) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id

	return id
}
