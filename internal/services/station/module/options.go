package module

import (
	"time"

	"wifiman/internal/platform/config"
)

// Options bounds each join attempt
type Options struct {
	MaxAttempts  int
	PollInterval time.Duration
}

// FromConfig reads with STATION_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("STATION_")
	return Options{
		MaxAttempts:  c.MayInt("MAX_ATTEMPTS", 100),
		PollInterval: c.MayDuration("POLL_INTERVAL", 100*time.Millisecond),
	}
}
