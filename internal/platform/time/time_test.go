package time

import (
	"context"
	"testing"
	"time"
)

func TestSleep(t *testing.T) {
	if !Sleep(context.Background(), time.Millisecond) {
		t.Fatalf("expected full sleep")
	}
	if !Sleep(context.Background(), 0) {
		t.Fatalf("zero duration on live ctx should report true")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if Sleep(ctx, time.Minute) {
		t.Fatalf("cancelled ctx should cut sleep short")
	}
	if time.Since(start) > time.Second {
		t.Fatalf("sleep ignored cancellation")
	}
	if Sleep(ctx, 0) {
		t.Fatalf("zero duration on dead ctx should report false")
	}
}

func TestClock(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := Clock(func() time.Time { return fixed }).Now(); !got.Equal(fixed) {
		t.Fatalf("Now() = %v", got)
	}
	var c Clock
	if c.Now().IsZero() {
		t.Fatalf("nil clock should fall back to time.Now")
	}
}
