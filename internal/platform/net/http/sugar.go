package http

import (
	"net/http"

	"wifiman/internal/platform/net/http/bind"
)

// GetJSON mounts a return-style JSON handler for GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Handle(func(req *http.Request) Response {
		out, err := h(req)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	}))
}

// PostJSON binds and validates T, then maps the result to status
// A nil result with no error is a 204
func PostJSON[T any](r Router, path string, status int, h func(*http.Request, T) (any, error)) {
	r.Post(path, Handle(func(req *http.Request) Response {
		in, err := bind.ParseJSON[T](req)
		if err != nil {
			return Error(err)
		}
		out, err := h(req, in)
		switch {
		case err != nil:
			return Error(err)
		case out == nil:
			return NoContent()
		}
		return Response{Status: status, Body: out}
	}))
}
