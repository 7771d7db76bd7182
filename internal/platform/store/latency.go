package store

import (
	"context"
	"time"
)

// Latency holds the artificial delay applied before each gateway operation to
// emulate network I/O.
type Latency struct {
	List   time.Duration
	Get    time.Duration
	Create time.Duration
	Update time.Duration
	Delete time.Duration
}

// DefaultLatency mirrors the delays of the mock API the console was built on.
func DefaultLatency() Latency {
	return Latency{
		List:   300 * time.Millisecond,
		Get:    200 * time.Millisecond,
		Create: 400 * time.Millisecond,
		Update: 400 * time.Millisecond,
		Delete: 300 * time.Millisecond,
	}
}

// Scale multiplies every delay by factor. A non-positive factor disables delays.
func (l Latency) Scale(factor float64) Latency {
	if factor <= 0 {
		return Latency{}
	}
	mul := func(d time.Duration) time.Duration { return time.Duration(float64(d) * factor) }
	return Latency{
		List:   mul(l.List),
		Get:    mul(l.Get),
		Create: mul(l.Create),
		Update: mul(l.Update),
		Delete: mul(l.Delete),
	}
}

// Wait blocks for d or until ctx is done.
func Wait(ctx context.Context, d time.Duration) error {
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
