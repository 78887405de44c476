package module

import "wifiman/internal/platform/config"

// Options controls where and how credentials are persisted
type Options struct {
	Path      string
	SecretKey string
}

// FromConfig reads STORE_PATH and STORE_SECRET_KEY
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("STORE_")
	return Options{
		Path:      c.MayString("PATH", "wifi.dat"),
		SecretKey: c.MaySecret("SECRET_KEY", ""),
	}
}
