package httpkit

import (
	"net/http"

	pstr "wifiman/internal/platform/strings"
)

// MountAPI mounts a subrouter under /api/{version}, applies mw, then calls mount
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	prefix := "/api" + pstr.MustPrefix(version)
	r.Route(prefix, func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 is MountAPI with version v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
