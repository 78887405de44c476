// Package module wires the status API into a modkit module
package module

import (
	"wifiman/internal/modkit"
	"wifiman/internal/modkit/httpkit"
	phttp "wifiman/internal/platform/net/http"
	cdom "wifiman/internal/services/credstore/domain"
	pdom "wifiman/internal/services/provision/domain"
	statushttp "wifiman/internal/services/statusapi/http"
)

// Ports are the collaborators the status API reads and drives
type Ports struct {
	Orchestrator pdom.Port
	Store        cdom.Port
}

// Module implements the status module
type Module struct {
	b modkit.Built
}

// New constructs the module; pass the collaborators with modkit.WithPorts(Ports{...})
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("statusapi")}, opts...)...)
	p, _ := b.Ports.(Ports)

	external := b.Register
	b.Register = func(r phttp.Router) {
		statushttp.Register(r, p.Orchestrator, p.Store)
		external(r)
	}
	return &Module{b: b}
}

// MountRoutes mounts the status endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) { m.b.Mount(r) }

// Ports returns the injected collaborators
func (m *Module) Ports() any { return m.b.Ports }

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }
