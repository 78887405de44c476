package httpkit

import (
	"net/http"

	phttp "wifiman/internal/platform/net/http"
)

// GetJSON mounts a JSON handler under GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostJSON binds and validates T and replies 201 with the result, 204 when it is nil
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, http.StatusCreated, h)
}

// PostAction mounts a bodiless POST that replies 204 on success
// Control actions never carry a payload back; errors use the usual envelope
func PostAction(r Router, path string, h func(*http.Request) error) {
	r.Post(path, phttp.Handle(func(req *http.Request) phttp.Response {
		if err := h(req); err != nil {
			return phttp.Error(err)
		}
		return phttp.NoContent()
	}))
}
