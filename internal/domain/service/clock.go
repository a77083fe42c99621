package service

import "time"

// Clock supplies the current time and creation-timestamp identifiers
type Clock interface {
	Now() time.Time

	// NextID returns a millisecond timestamp strictly greater than any id
	// previously returned by this clock.
	NextID() int64
}
