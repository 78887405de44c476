package module

import (
	"time"

	"wifiman/internal/platform/config"
)

// Options controls the portal listener
type Options struct {
	Addr        string
	APName      string
	ReadTimeout time.Duration
	ResultDelay time.Duration
	AcceptPoll  time.Duration
}

// FromConfig reads PORTAL_* and the AP name shown as the page heading
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("PORTAL_")
	return Options{
		Addr:        c.MayAddr("ADDR", ":80"),
		APName:      cfg.Prefix("AP_").MayString("SSID", "WifiManager"),
		ReadTimeout: c.MayDuration("READ_TIMEOUT", 5*time.Second),
		ResultDelay: c.MayDuration("RESULT_DELAY", 5*time.Second),
		AcceptPoll:  c.MayDuration("ACCEPT_POLL", time.Second),
	}
}
