// Package http provides the chi router seam and JSON envelope helpers
// used by the status API
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "wifiman/internal/platform/errors"
	pnet "wifiman/internal/platform/net"
)

// Envelope is the response body of every status API endpoint
// Data carries the payload on success; Code and Error replace it on failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func envelope(r *stdhttp.Request, status int, data any) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
		Data:       data,
	}
}

func errorEnvelope(r *stdhttp.Request, err error) (int, Envelope) {
	status := perr.HTTPStatus(err)
	wr := perr.WireFrom(err)
	env := envelope(r, status, nil)
	env.Code = wr.Code
	env.Error = wr.Message
	return status, env
}

// RespondNoContent writes a 204 with no body
func RespondNoContent(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	w.WriteHeader(stdhttp.StatusNoContent)
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := errorEnvelope(r, err)
	JSON(w, status, env)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		if err, ok := resp.Body.(error); ok && err != nil {
			RespondError(w, r, err)
			return
		}
		status := resp.Status
		if status == 0 {
			status = stdhttp.StatusOK
		}
		if status == stdhttp.StatusNoContent {
			RespondNoContent(w, r)
			return
		}
		JSON(w, status, envelope(r, status, resp.Body))
	}
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }
