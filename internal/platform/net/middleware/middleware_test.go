package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "wifiman/internal/platform/errors"
	"wifiman/internal/platform/logger"
	pnet "wifiman/internal/platform/net"

	"github.com/rs/zerolog"
)

func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestDefaultsCarryRequestScope(t *testing.T) {
	var gotID, gotLogID string
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = pnet.RequestID(r.Context())
		gotLogID = logger.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}), Defaults()...)

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("X-Request-ID", "rid-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status %d", rec.Code)
	}
	if gotID != "rid-42" || gotLogID != "rid-42" {
		t.Fatalf("request id not propagated: chi=%q logger=%q", gotID, gotLogID)
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("expected no-cache headers")
	}
}

func TestRecoverJSON(t *testing.T) {
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("radio exploded") }),
		RequestID(), RequestScope(), RecoverJSON)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "rid-p")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	var body panicWire
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Code != perr.ErrorCodePanic || body.RequestID != "rid-p" {
		t.Fatalf("body %+v", body)
	}
	if rec.Header().Get("X-Request-ID") != "rid-p" {
		t.Fatalf("request id header not mirrored")
	}
}

func TestAccessLogPassesThrough(t *testing.T) {
	h := AccessLogZerolog(AccessLogOptions{Slow: time.Nanosecond, Quiet: []string{"/api/v1/status"}})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/credentials", nil))
	if rec.Code != http.StatusCreated || rec.Body.String() != "hello" {
		t.Fatalf("recorder = %d %q", rec.Code, rec.Body.String())
	}
}

func TestAccessLevel(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		elapsed time.Duration
		quiet   bool
		want    string
	}{
		{"ok", http.StatusOK, time.Millisecond, false, "info"},
		{"quiet poll", http.StatusOK, time.Millisecond, true, "debug"},
		{"slow beats quiet", http.StatusOK, time.Second, true, "warn"},
		{"server error", http.StatusServiceUnavailable, time.Millisecond, true, "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)
			accessLevel(&l, tc.status, tc.elapsed, 500*time.Millisecond, tc.quiet).Msg("request done")
			if !strings.Contains(buf.String(), `"level":"`+tc.want+`"`) {
				t.Fatalf("line = %s, want level %s", buf.String(), tc.want)
			}
		})
	}
}

func TestHeartbeat(t *testing.T) {
	h := Heartbeat("/health")(http.NotFoundHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("heartbeat status %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	h := CORS(CORSOptions{AllowedOrigins: []string{"http://setup.local"}})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest("GET", "/api/v1/status", nil)
	req.Header.Set("Origin", "http://setup.local")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://setup.local" {
		t.Fatalf("allow-origin %q", got)
	}

	req = httptest.NewRequest("GET", "/api/v1/status", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}
