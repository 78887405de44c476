package module

import (
	"time"

	"wifiman/internal/platform/config"
)

// Options controls the status API listener
type Options struct {
	Enabled     bool
	Addr        string
	CORSOrigins []string
	Swagger     bool
	Profiler    bool
	SlowRequest time.Duration
}

// FromConfig reads with STATUS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("STATUS_")
	return Options{
		Enabled:     c.MayBool("ENABLED", true),
		Addr:        c.MayAddr("ADDR", "127.0.0.1:8787"),
		CORSOrigins: c.MayCSV("CORS_ORIGINS", nil),
		Swagger:     c.MayBool("SWAGGER", false),
		Profiler:    c.MayBool("PROFILER", false),
		SlowRequest: c.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
	}
}
