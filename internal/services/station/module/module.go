// Package module wires the station connector over the shared radio
package module

import (
	"wifiman/internal/modkit"
	phttp "wifiman/internal/platform/net/http"
	"wifiman/internal/services/station/service"
)

// Module is the station connector module
type Module struct {
	ports Ports
}

// New constructs the module; non-zero overrides win over config
func New(deps modkit.Deps, overrides Options) *Module {
	opts := FromConfig(deps.Cfg)
	if overrides.MaxAttempts != 0 {
		opts.MaxAttempts = overrides.MaxAttempts
	}
	if overrides.PollInterval != 0 {
		opts.PollInterval = overrides.PollInterval
	}

	svc := service.New(deps.Radio, service.Config{
		MaxAttempts:  opts.MaxAttempts,
		PollInterval: opts.PollInterval,
	})
	return &Module{ports: Ports{Connector: svc}}
}

// Ports returns the module ports (Connector)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "station" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ phttp.Router) {}
