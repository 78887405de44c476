// Package statusapi mounts the local JSON status and control API
package statusapi

import (
	"wifiman/internal/modkit/httpkit"
	"wifiman/internal/modkit/module"
	"wifiman/internal/modkit/swaggerkit"
	phttp "wifiman/internal/platform/net/http"
	statusmod "wifiman/internal/services/statusapi/module"
)

// Mount attaches the common middleware stack, the docs UI and /api/v1 with
// every module's routes; each module is registered for port lookups
// r must have no routes yet
func Mount(r phttp.Router, o statusmod.Options, mods ...module.Module) {
	r.Use(httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: o.CORSOrigins,
		SlowRequest: o.SlowRequest,
		QuietPaths:  []string{"/api/v1/status"},
	})...)

	swaggerkit.Mount(r, o.Swagger)
	phttp.MountProfiler(r, "/debug", o.Profiler)

	httpkit.MountAPIV1(r, nil, func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m)
			m.MountRoutes(api)
		}
	})
}
