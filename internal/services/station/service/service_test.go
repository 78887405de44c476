package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"wifiman/internal/core/radio/radiotest"
	kit "wifiman/internal/platform/testkit"
	dom "wifiman/internal/services/station/domain"

	"github.com/rs/zerolog"
)

func newSvc(f *radiotest.Fake, attempts int) (*Svc, *int) {
	s := New(f, Config{MaxAttempts: attempts, PollInterval: 100 * time.Millisecond})
	slept := 0
	s.sleep = func(context.Context, time.Duration) bool { slept++; return true }
	return s, &slept
}

func lastCall(f *radiotest.Fake) string {
	c := f.Calls()
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1]
}

func TestConnectAssociates(t *testing.T) {
	f := radiotest.New(map[string]string{"home": "pw"})
	f.AssociateAfter = 3
	s, slept := newSvc(f, 100)

	at := s.Connect(context.Background(), "home", "pw")
	if !at.OK() || at.Name != "home" || at.Secret != "pw" {
		t.Fatalf("attempt = %+v", at)
	}
	// three polls count down, the fourth associates
	if *slept != 3 {
		t.Fatalf("slept %d times, want 3", *slept)
	}
	if f.Network() != "home" {
		t.Fatalf("network = %q", f.Network())
	}
}

func TestConnectTimesOutAndDisconnects(t *testing.T) {
	f := radiotest.New(map[string]string{"home": "pw"})
	s, slept := newSvc(f, 100)

	at := s.Connect(context.Background(), "home", "wrong")
	if at.OK() || at.Outcome != dom.TimedOut {
		t.Fatalf("attempt = %+v", at)
	}
	if *slept != 100 {
		t.Fatalf("slept %d times, want 100", *slept)
	}
	if lastCall(f) != "disconnect" {
		t.Fatalf("expected trailing disconnect, calls=%v", f.Calls())
	}
}

func TestConnectErrorStillPolls(t *testing.T) {
	f := radiotest.New(nil)
	f.ConnectErr = errors.New("busy")
	f.Associate("stale")
	s, _ := newSvc(f, 5)

	if at := s.Connect(context.Background(), "home", "pw"); !at.OK() {
		t.Fatalf("expected an existing association to count, got %+v", at)
	}
}

func TestPollErrorsAreNotAssociated(t *testing.T) {
	f := radiotest.New(map[string]string{"home": "pw"})
	f.PollErr = errors.New("dbus gone")
	s, _ := newSvc(f, 4)

	if at := s.Connect(context.Background(), "home", "pw"); at.OK() {
		t.Fatalf("poll errors must not count as associated")
	}
}

func TestCancelledContextStillDisconnects(t *testing.T) {
	f := radiotest.New(map[string]string{"home": "pw"})
	s := New(f, Config{MaxAttempts: 100, PollInterval: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	at := s.Connect(ctx, "home", "nope")
	if at.OK() {
		t.Fatalf("expected timeout outcome")
	}
	if time.Since(start) > time.Second {
		t.Fatalf("cancelled connect should return promptly")
	}
	if lastCall(f) != "disconnect" {
		t.Fatalf("expected disconnect, calls=%v", f.Calls())
	}
}

func TestCancelledJoinLogsPollsMade(t *testing.T) {
	f := radiotest.New(map[string]string{"home": "pw"})
	s := New(f, Config{MaxAttempts: 30, PollInterval: time.Hour})
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	s.log = &l
	ctx, cancel := context.WithCancel(context.Background())
	polls := 0
	s.sleep = func(context.Context, time.Duration) bool {
		polls++
		if polls == 2 {
			cancel()
			return false
		}
		return true
	}

	if at := s.Connect(ctx, "home", "nope"); at.OK() {
		t.Fatalf("expected timeout outcome")
	}
	out := buf.String()
	kit.MustContain(t, out, `"polls":2`)
	kit.MustContain(t, out, `"cancelled":true`)
	kit.MustNotContain(t, out, `"polls":30`)
}
