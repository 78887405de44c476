// Package module wires the provisioning orchestrator over the store, connector and portal
package module

import (
	"wifiman/internal/modkit"
	phttp "wifiman/internal/platform/net/http"
	cdom "wifiman/internal/services/credstore/domain"
	pdom "wifiman/internal/services/portal/domain"
	"wifiman/internal/services/provision/service"
	sdom "wifiman/internal/services/station/domain"
)

// Module is the provision module
type Module struct {
	opts  Options
	ports Ports
}

// Collaborators are the ports the orchestrator drives
type Collaborators struct {
	Store     cdom.Port
	Connector sdom.Port
	Portal    pdom.Port
}

// New constructs the orchestrator; invalid AP settings are a startup error
func New(deps modkit.Deps, c Collaborators, overrides Options) (*Module, error) {
	opts := FromConfig(deps.Cfg)
	if overrides.APSSID != "" {
		opts.APSSID = overrides.APSSID
	}
	if overrides.APPassword != "" {
		opts.APPassword = overrides.APPassword
	}
	if overrides.APMinPasswordLen != 0 {
		opts.APMinPasswordLen = overrides.APMinPasswordLen
	}
	if overrides.APAuthMode != "" {
		opts.APAuthMode = overrides.APAuthMode
	}
	if overrides.RebootOnSuccess {
		opts.RebootOnSuccess = true
	}
	if overrides.RebootDelay != 0 {
		opts.RebootDelay = overrides.RebootDelay
	}
	if overrides.WatchInterval != 0 {
		opts.WatchInterval = overrides.WatchInterval
	}
	if overrides.Once {
		opts.WatchInterval = 0
	}

	svc, err := service.New(deps.Radio, c.Store, c.Connector, c.Portal, service.Config{
		AP: service.APSettings{
			SSID:           opts.APSSID,
			Password:       opts.APPassword,
			AuthMode:       opts.APAuthMode,
			MinPasswordLen: opts.APMinPasswordLen,
		},
		RebootOnSuccess: opts.RebootOnSuccess,
		RebootDelay:     opts.RebootDelay,
		WatchInterval:   opts.WatchInterval,
	})
	if err != nil {
		return nil, err
	}

	deps.Log.Info().
		Str("ap_ssid", opts.APSSID).
		Str("ap_auth", string(opts.APAuthMode)).
		Bool("reboot_on_success", opts.RebootOnSuccess).
		Dur("watch_interval", opts.WatchInterval).
		Msg("provisioning configured")

	return &Module{opts: opts, ports: Ports{Orchestrator: svc}}, nil
}

// Options returns the effective options
func (m *Module) Options() Options { return m.opts }

// Ports returns the module ports (Orchestrator)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "provision" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ phttp.Router) {}
