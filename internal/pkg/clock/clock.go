// Package clock abstracts wall time so timestamps and pauses can be faked
// in tests
package clock

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/osrsdps/dps-console/internal/pkg/clock Clock

// Clock reads the time and waits on it
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx ends, returning ctx.Err() in that case
	Sleep(ctx context.Context, d time.Duration) error
}

// System is the Clock backed by the runtime
type System struct{}

// Now returns the current wall time
func (System) Now() time.Time {
	return time.Now()
}

// Sleep waits on a timer that is released when ctx ends first
func (System) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// New returns the system clock
func New() Clock {
	return System{}
}
