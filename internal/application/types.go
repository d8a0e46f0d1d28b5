package application

import (
	"time"

	"github.com/google/uuid"
)

// NewSessionID returns a fresh opaque session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// Clock abstracts time so classification stays deterministic in tests
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
