// Package module wires the credential store and exposes its port
package module

import (
	"wifiman/internal/core/seal"
	"wifiman/internal/modkit"
	phttp "wifiman/internal/platform/net/http"
	"wifiman/internal/services/credstore/repo"
	"wifiman/internal/services/credstore/service"
)

// Module is the credential store module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New constructs the module; non-zero overrides win over config
// A key that cannot be turned into a cipher is a startup error
func New(deps modkit.Deps, overrides Options) (*Module, error) {
	opts := FromConfig(deps.Cfg)
	if overrides.Path != "" {
		opts.Path = overrides.Path
	}
	if overrides.SecretKey != "" {
		opts.SecretKey = overrides.SecretKey
	}

	codec, err := seal.New(opts.SecretKey)
	if err != nil {
		return nil, err
	}
	svc := service.New(repo.NewFile(deps.Filesystem(), opts.Path), codec)

	deps.Log.Info().
		Str("path", opts.Path).
		Bool("encrypted", codec.Encrypting()).
		Msg("credential store ready")

	return &Module{deps: deps, opts: opts, ports: Ports{Store: svc}}, nil
}

// Ports returns the module ports (Store)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "credstore" }

// MountRoutes mounts nothing; the status API reaches the store through its port
func (m *Module) MountRoutes(_ phttp.Router) {}
