package module

import (
	"time"

	"wifiman/internal/core/radio"
	"wifiman/internal/platform/config"
)

// Options controls the access point and the orchestrator policies
type Options struct {
	APSSID           string
	APPassword       string
	APMinPasswordLen int
	APAuthMode       radio.AuthMode

	RebootOnSuccess bool
	RebootDelay     time.Duration
	WatchInterval   time.Duration
	// Once disables supervision regardless of WatchInterval
	Once bool
}

// FromConfig reads AP_*, REBOOT_* and WATCH_INTERVAL
func FromConfig(cfg config.Conf) Options {
	ap := cfg.Prefix("AP_")
	return Options{
		APSSID:           ap.MayString("SSID", "WifiManager"),
		APPassword:       ap.MaySecret("PASSWORD", "wifimanager"),
		APMinPasswordLen: ap.MayInt("MIN_PASSWORD_LEN", 8),
		APAuthMode:       radio.AuthMode(ap.MayEnum("AUTH_MODE", string(radio.AuthWPA2PSK), radio.AuthModes...)),

		RebootOnSuccess: cfg.MayBool("REBOOT_ON_SUCCESS", false),
		RebootDelay:     cfg.MayDuration("REBOOT_DELAY", 5*time.Second),
		WatchInterval:   cfg.MayDuration("WATCH_INTERVAL", 10*time.Second),
	}
}
