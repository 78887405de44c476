// Package httpkit provides handler and routing helpers over the platform http package
// modules use these so they do not import internal/platform/net/http directly
package httpkit

import phttp "wifiman/internal/platform/net/http"

// Router is a re-export of the platform router seam
type Router = phttp.Router
