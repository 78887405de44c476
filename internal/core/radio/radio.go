// Package radio defines the capability the daemon drives: a station
// (client) interface and an access point interface on one device
package radio

import (
	"context"
	"strings"

	perr "wifiman/internal/platform/errors"
)

// AuthMode is the access point security mode
type AuthMode string

// Supported access point auth modes
const (
	AuthOpen       AuthMode = "open"
	AuthWEP        AuthMode = "wep"
	AuthWPAPSK     AuthMode = "wpa-psk"
	AuthWPA2PSK    AuthMode = "wpa2-psk"
	AuthWPAWPA2PSK AuthMode = "wpa-wpa2-psk"
)

// AuthModes lists every accepted mode in config order
var AuthModes = []string{
	string(AuthOpen), string(AuthWEP), string(AuthWPAPSK), string(AuthWPA2PSK), string(AuthWPAWPA2PSK),
}

// ParseAuthMode accepts a mode name case-insensitively
func ParseAuthMode(s string) (AuthMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range AuthModes {
		if s == m {
			return AuthMode(m), nil
		}
	}
	return "", perr.InvalidArgf("unknown auth mode %q", s)
}

// IPConfig is the station interface address block
type IPConfig struct {
	IP      string `json:"ip"`
	Netmask string `json:"netmask,omitempty"`
	Gateway string `json:"gateway,omitempty"`
	DNS     string `json:"dns,omitempty"`
}

// APConfig configures the access point interface
type APConfig struct {
	SSID     string
	Secret   string
	AuthMode AuthMode
}

// Radio is the platform radio layer
// Connect only requests a join; callers poll IsAssociated
type Radio interface {
	StationActivate(ctx context.Context, on bool) error
	APActivate(ctx context.Context, on bool) error
	IsAssociated(ctx context.Context) (bool, error)
	Connect(ctx context.Context, ssid, secret string) error
	Disconnect(ctx context.Context) error
	// Scan returns visible network names in the order the driver reports them
	Scan(ctx context.Context) ([]string, error)
	IPConfig(ctx context.Context) (IPConfig, error)
	APConfigure(ctx context.Context, cfg APConfig) error
}

// Rebooter is implemented by drivers that can restart the device
type Rebooter interface {
	Reboot(ctx context.Context) error
}
