package modkit

import (
	"net/http"

	phttp "wifiman/internal/platform/net/http"
	pstr "wifiman/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(phttp.Router)
}

// Build applies Option funcs and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	if c.prefix != "" {
		c.prefix = pstr.MustPrefix(c.prefix)
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount registers b under its prefix with its middleware
// An empty prefix registers directly on r
func (b Built) Mount(r phttp.Router) {
	if b.Prefix == "" {
		r.Group(func(g phttp.Router) {
			if len(b.Mw) > 0 {
				g.Use(b.Mw...)
			}
			b.Register(g)
		})
		return
	}
	r.Route(b.Prefix, func(sub phttp.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		b.Register(sub)
	})
}
