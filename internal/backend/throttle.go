package backend

import (
	"context"
	"time"
)

// throttle spaces successive daemon requests by at least gap. It is only used
// from the worker goroutine.
type throttle struct {
	gap  time.Duration
	last time.Time
}

func newThrottle(gap time.Duration) *throttle {
	if gap < 0 {
		gap = 0
	}
	return &throttle{gap: gap}
}

// wait blocks until gap has passed since the previous request, or until ctx
// is done.
func (t *throttle) wait(ctx context.Context) error {
	if t == nil || t.gap <= 0 {
		return nil
	}
	if !t.last.IsZero() {
		if d := t.gap - time.Since(t.last); d > 0 {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	t.last = time.Now()
	return nil
}
