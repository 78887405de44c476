// Package wire is the portal's minimal HTTP dialect: a request-line and
// form parser plus raw response framing. Headers are never interpreted.
package wire

import (
	"bytes"
	"net/url"
	"strings"

	perr "wifiman/internal/platform/errors"
)

// Route keys the portal dispatches on
const (
	RouteRoot      = ""
	RouteConfigure = "configure"
)

var headerEnd = []byte("\r\n\r\n")

// Request is the parsed view of one portal exchange
type Request struct {
	Method string
	// Route is the path without its leading slash, query or trailing slashes
	Route string
	Query string
	Body  string
}

// ParseRequest finds the first "GET /" or "POST /" request line in raw
// The path runs to '?' or to the " HTTP" marker on the same line
func ParseRequest(raw []byte) (Request, error) {
	method, start := firstMethod(raw)
	if start < 0 {
		return Request{}, perr.Unparsablef("no request line")
	}
	line := raw[start:]
	if i := bytes.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	end := bytes.Index(line, []byte(" HTTP"))
	if end < 0 {
		return Request{}, perr.Unparsablef("request line has no protocol marker")
	}
	target := string(line[:end])

	req := Request{Method: method}
	if path, query, ok := strings.Cut(target, "?"); ok {
		req.Route, req.Query = path, query
	} else {
		req.Route = target
	}
	req.Route = strings.TrimRight(req.Route, "/")

	if i := bytes.Index(raw, headerEnd); i >= 0 {
		req.Body = string(raw[i+len(headerEnd):])
	}
	return req, nil
}

// firstMethod returns the method and the offset just past "METHOD /" for
// whichever of GET or POST occurs first
func firstMethod(raw []byte) (string, int) {
	method, at := "", -1
	for _, m := range []string{"GET", "POST"} {
		if i := bytes.Index(raw, []byte(m+" /")); i >= 0 && (at < 0 || i < at) {
			method, at = m, i
		}
	}
	if at < 0 {
		return "", -1
	}
	return method, at + len(method) + 2
}

// FormSource returns the text credentials are extracted from: the query
// string for GET, the body for POST (or its query when the body is empty)
func (r Request) FormSource() string {
	if r.Method == "GET" || r.Body == "" {
		return r.Query
	}
	return r.Body
}

// Credentials is a submitted network name and secret
type Credentials struct {
	SSID     string
	Password string
}

// ExtractCredentials finds the first "ssid=<no &>&password=<to end of line>"
// pair in src and form-decodes both fields
// Returns InvalidArgument when the pair is absent and RequestUnparsable on a bad escape
func ExtractCredentials(src string) (Credentials, error) {
	for from := 0; ; {
		i := strings.Index(src[from:], "ssid=")
		if i < 0 {
			return Credentials{}, perr.InvalidArgf("parameters not found")
		}
		i += from
		rest := src[i+len("ssid="):]
		amp := strings.IndexByte(rest, '&')
		if amp >= 0 && strings.HasPrefix(rest[amp:], "&password=") {
			ssid := rest[:amp]
			pass := rest[amp+len("&password="):]
			if j := strings.IndexAny(pass, "\r\n"); j >= 0 {
				pass = pass[:j]
			}
			return decodePair(ssid, pass)
		}
		from = i + 1
	}
}

func decodePair(ssid, pass string) (Credentials, error) {
	s, err := url.QueryUnescape(ssid)
	if err != nil {
		return Credentials{}, perr.Wrap(err, perr.ErrorCodeRequestUnparsable, "decode ssid")
	}
	p, err := url.QueryUnescape(pass)
	if err != nil {
		return Credentials{}, perr.Wrap(err, perr.ErrorCodeRequestUnparsable, "decode password")
	}
	return Credentials{SSID: s, Password: p}, nil
}
