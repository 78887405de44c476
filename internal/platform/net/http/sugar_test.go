package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "wifiman/internal/platform/errors"
	phttp "wifiman/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type addReq struct {
	SSID string `json:"ssid" validate:"ssid"`
}

func TestPostJSON(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.PostJSON(r, "/creds", http.StatusCreated, func(_ *http.Request, in addReq) (any, error) {
		if in.SSID == "fail" {
			return nil, errors.New("boom")
		}
		if in.SSID == "quiet" {
			return nil, nil
		}
		return map[string]string{"ssid": in.SSID}, nil
	})

	cases := []struct {
		body string
		want int
	}{
		{`{"ssid":"home"}`, http.StatusCreated},
		{`{"ssid":"quiet"}`, http.StatusNoContent},
		{`{"ssid":"fail"}`, http.StatusInternalServerError},
		{`{"ssid":""}`, http.StatusBadRequest},
		{`nope`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest("POST", "/creds", strings.NewReader(tc.body)))
		if rec.Code != tc.want {
			t.Fatalf("%s: status %d want %d (%s)", tc.body, rec.Code, tc.want, rec.Body.String())
		}
	}
}

func TestGetJSON(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.GetJSON(r, "/missing", func(*http.Request) (any, error) { return nil, perr.NotFoundf("gone") })
	phttp.GetJSON(r, "/ok", func(*http.Request) (any, error) { return []string{"a"}, nil })

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing: %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ok", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"data":["a"]`) {
		t.Fatalf("ok: %d %s", rec.Code, rec.Body.String())
	}
}

func TestMountOptional(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(r, "/debug", false)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler should 404, got %d", rec.Code)
	}

	r2 := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(r2, "/debug", true)
	rec = httptest.NewRecorder()
	r2.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("enabled profiler: %d", rec.Code)
	}
}
