package wire

import (
	"testing"

	perr "wifiman/internal/platform/errors"
)

func TestParseRequestRoutes(t *testing.T) {
	cases := []struct {
		raw    string
		method string
		route  string
		query  string
	}{
		{"GET / HTTP/1.1\r\nHost: 192.168.4.1\r\n\r\n", "GET", RouteRoot, ""},
		{"GET /configure?foo=bar HTTP/1.1\r\n\r\n", "GET", RouteConfigure, "foo=bar"},
		{"POST /configure HTTP/1.1\r\n\r\nssid=a&password=b", "POST", RouteConfigure, ""},
		{"GET /configure/ HTTP/1.1\r\n\r\n", "GET", RouteConfigure, ""},
		{"GET /configure// HTTP/1.0\r\n\r\n", "GET", RouteConfigure, ""},
		{"GET /favicon.ico HTTP/1.1\r\n\r\n", "GET", "favicon.ico", ""},
		{"GET /?x=1 HTTP/1.1\r\n\r\n", "GET", RouteRoot, "x=1"},
		{"GET /a?b?c HTTP/1.1\r\n\r\n", "GET", "a", "b?c"},
		{"garbage POST /configure HTTP/1.1\r\n\r\n", "POST", RouteConfigure, ""},
	}
	for _, tc := range cases {
		req, err := ParseRequest([]byte(tc.raw))
		if err != nil {
			t.Fatalf("%q: %v", tc.raw, err)
		}
		if req.Method != tc.method || req.Route != tc.route || req.Query != tc.query {
			t.Fatalf("%q: got %+v", tc.raw, req)
		}
	}
}

func TestParseRequestBody(t *testing.T) {
	req, err := ParseRequest([]byte("POST /configure HTTP/1.1\r\nContent-Type: application/x-www-form-urlencoded\r\n\r\nssid=MyNet&password=abc%21123"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Body != "ssid=MyNet&password=abc%21123" || req.FormSource() != req.Body {
		t.Fatalf("body %q", req.Body)
	}
	get, _ := ParseRequest([]byte("GET /configure?ssid=a&password=b HTTP/1.1\r\n\r\n"))
	if get.FormSource() != "ssid=a&password=b" {
		t.Fatalf("GET form source %q", get.FormSource())
	}
	bare, _ := ParseRequest([]byte("POST /configure?ssid=q&password=r HTTP/1.1\r\n\r\n"))
	if bare.FormSource() != "ssid=q&password=r" {
		t.Fatalf("POST without body should read the query, got %q", bare.FormSource())
	}
}

func TestParseRequestUnparsable(t *testing.T) {
	for _, raw := range []string{
		"",
		"PUT /configure HTTP/1.1\r\n\r\n",
		"GET /configure\r\n HTTP/1.1\r\n\r\n",
		"\x16\x03\x01\x02\x00",
	} {
		if _, err := ParseRequest([]byte(raw)); !perr.IsCode(err, perr.ErrorCodeRequestUnparsable) {
			t.Fatalf("%q: expected unparsable, got %v", raw, err)
		}
	}
}

func TestExtractCredentials(t *testing.T) {
	cases := []struct {
		src  string
		ssid string
		pass string
	}{
		{"ssid=MyNet&password=abc%21123", "MyNet", "abc!123"},
		{"ssid=My+Net&password=p%3Fq%23r", "My Net", "p?q#r"},
		{"ssid=&password=x", "", "x"},
		{"ssid=caf%C3%A9&password=", "café", ""},
		{"ssid=a&password=b&c=d", "a", "b&c=d"},
		{"ssid=x&foo=1 ssid=home&password=pw\r\nHost: y", "home", "pw"},
	}
	for _, tc := range cases {
		got, err := ExtractCredentials(tc.src)
		if err != nil {
			t.Fatalf("%q: %v", tc.src, err)
		}
		if got.SSID != tc.ssid || got.Password != tc.pass {
			t.Fatalf("%q: got %+v", tc.src, got)
		}
	}
}

func TestExtractCredentialsFailures(t *testing.T) {
	if _, err := ExtractCredentials("password=x&ssid=y"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("reordered fields: %v", err)
	}
	if _, err := ExtractCredentials(""); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("empty: %v", err)
	}
	if _, err := ExtractCredentials("ssid=%zz&password=x"); !perr.IsCode(err, perr.ErrorCodeRequestUnparsable) {
		t.Fatalf("bad escape: %v", err)
	}
	if _, err := ExtractCredentials("ssid=ok&password=%4"); !perr.IsCode(err, perr.ErrorCodeRequestUnparsable) {
		t.Fatalf("truncated escape: %v", err)
	}
}
