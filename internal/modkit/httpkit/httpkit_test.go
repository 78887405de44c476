package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "wifiman/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type body struct {
	Name string `json:"name" validate:"required"`
}

func newRouter() Router { return phttp.AdaptChi(chi.NewRouter()) }

func serve(r Router, method, path, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(payload)))
	return rec
}

func TestMountAPIV1(t *testing.T) {
	r := newRouter()
	MountAPIV1(r, nil, func(api Router) {
		GetJSON(api, "/status", func(*http.Request) (any, error) { return "ok", nil })
		PostJSON(api, "/things", func(_ *http.Request, b body) (any, error) { return b, nil })
		PostAction(api, "/poke", func(*http.Request) error { return nil })
		PostAction(api, "/fail", func(*http.Request) error { return errors.New("nope") })
	})

	if rec := serve(r, "GET", "/api/v1/status", ""); rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if rec := serve(r, "POST", "/api/v1/things", `{"name":"a"}`); rec.Code != http.StatusCreated {
		t.Fatalf("things: %d %s", rec.Code, rec.Body.String())
	}
	if rec := serve(r, "POST", "/api/v1/things", `{}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("things invalid: %d", rec.Code)
	}
	if rec := serve(r, "POST", "/api/v1/poke", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("poke: %d", rec.Code)
	}
	if rec := serve(r, "POST", "/api/v1/fail", ""); rec.Code != http.StatusInternalServerError {
		t.Fatalf("fail: %d", rec.Code)
	}
}

func TestCommonStack(t *testing.T) {
	r := newRouter()
	r.Use(CommonStack(StackOptions{CORSOrigins: []string{"http://setup.local"}})...)
	r.Get("/x", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	if rec := serve(r, "GET", "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("heartbeat: %d", rec.Code)
	}
	rec := serve(r, "GET", "/x", "")
	if rec.Code != http.StatusOK || rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("x: %d %v", rec.Code, rec.Header())
	}
	if len(CommonStack(StackOptions{})) >= len(CommonStack(StackOptions{CORSOrigins: []string{"a"}})) {
		t.Fatalf("CORS should only be added when origins are configured")
	}
}
