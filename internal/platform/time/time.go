// Package time contains time related helpers
package time

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is done, reporting whether the full
// duration elapsed
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Clock is the seam services use for timestamps
type Clock func() time.Time

// Now returns c() or time.Now when c is nil
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
