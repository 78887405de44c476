// Package module wires the captive portal to the station connector and credential store
package module

import (
	"wifiman/internal/modkit"
	phttp "wifiman/internal/platform/net/http"
	cdom "wifiman/internal/services/credstore/domain"
	"wifiman/internal/services/portal/service"
	sdom "wifiman/internal/services/station/domain"
)

// Module is the portal module
type Module struct {
	ports Ports
}

// New constructs the portal module; non-zero overrides win over config
func New(deps modkit.Deps, station sdom.Port, creds cdom.Port, overrides Options) *Module {
	opts := FromConfig(deps.Cfg)
	if overrides.Addr != "" {
		opts.Addr = overrides.Addr
	}
	if overrides.APName != "" {
		opts.APName = overrides.APName
	}
	if overrides.ReadTimeout != 0 {
		opts.ReadTimeout = overrides.ReadTimeout
	}
	if overrides.ResultDelay != 0 {
		opts.ResultDelay = overrides.ResultDelay
	}
	if overrides.AcceptPoll != 0 {
		opts.AcceptPoll = overrides.AcceptPoll
	}

	svc := service.New(deps.Radio, station, creds, service.Config{
		Addr:        opts.Addr,
		APName:      opts.APName,
		ReadTimeout: opts.ReadTimeout,
		ResultDelay: opts.ResultDelay,
		AcceptPoll:  opts.AcceptPoll,
	})
	return &Module{ports: Ports{Portal: svc}}
}

// Ports returns the module ports (Portal)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "portal" }

// MountRoutes mounts nothing; the portal owns its raw listener
func (m *Module) MountRoutes(_ phttp.Router) {}
