package modkit

import (
	phttp "wifiman/internal/platform/net/http"
)

// Module is the common surface for daemon modules
// worker-only modules mount no routes
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set for cross wiring
	Ports() any
	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
