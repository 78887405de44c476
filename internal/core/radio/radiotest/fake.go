// Package radiotest provides a scriptable in-memory radio.Radio
package radiotest

import (
	"context"
	"fmt"
	"sync"

	"wifiman/internal/core/radio"
)

// Fake is a deterministic radio double
// A Connect with a secret listed in Accept associates after AssociateAfter
// polls of IsAssociated; anything else never associates
type Fake struct {
	mu sync.Mutex

	ScanResults    []string
	ScanErr        error
	ConnectErr     error
	PollErr        error
	Accept         map[string]string
	AssociateAfter int
	IP             radio.IPConfig

	associated bool
	pending    string
	countdown  int
	network    string
	stationOn  bool
	apOn       bool
	apCfg      radio.APConfig
	calls      []string
	attempts   []string
	rebooted   int
}

var (
	_ radio.Radio    = (*Fake)(nil)
	_ radio.Rebooter = (*Fake)(nil)
)

// New returns a Fake that accepts the given ssid→secret pairs
func New(accept map[string]string, scan ...string) *Fake {
	return &Fake{
		Accept:      accept,
		ScanResults: scan,
		IP:          radio.IPConfig{IP: "192.168.1.50", Netmask: "255.255.255.0", Gateway: "192.168.1.1", DNS: "192.168.1.1"},
	}
}

func (f *Fake) record(format string, a ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, a...))
}

// StationActivate implements radio.Radio
func (f *Fake) StationActivate(_ context.Context, on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("station_activate %v", on)
	f.stationOn = on
	return nil
}

// APActivate implements radio.Radio
func (f *Fake) APActivate(_ context.Context, on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ap_activate %v", on)
	f.apOn = on
	return nil
}

// IsAssociated implements radio.Radio and advances a pending join
func (f *Fake) IsAssociated(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PollErr != nil {
		return false, f.PollErr
	}
	if !f.associated && f.pending != "" {
		if f.countdown <= 0 {
			f.associated = true
			f.network = f.pending
			f.pending = ""
		} else {
			f.countdown--
		}
	}
	return f.associated, nil
}

// Connect implements radio.Radio
func (f *Fake) Connect(_ context.Context, ssid, secret string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("connect %s", ssid)
	f.attempts = append(f.attempts, ssid)
	if f.ConnectErr != nil {
		return f.ConnectErr
	}
	if want, ok := f.Accept[ssid]; ok && want == secret {
		f.pending = ssid
		f.countdown = f.AssociateAfter
	}
	return nil
}

// Disconnect implements radio.Radio
func (f *Fake) Disconnect(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("disconnect")
	f.associated = false
	f.pending = ""
	f.network = ""
	return nil
}

// Scan implements radio.Radio
func (f *Fake) Scan(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("scan")
	if f.ScanErr != nil {
		return nil, f.ScanErr
	}
	return append([]string(nil), f.ScanResults...), nil
}

// IPConfig implements radio.Radio; the zero value is returned while unassociated
func (f *Fake) IPConfig(context.Context) (radio.IPConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.associated {
		return radio.IPConfig{}, nil
	}
	return f.IP, nil
}

// APConfigure implements radio.Radio
func (f *Fake) APConfigure(_ context.Context, cfg radio.APConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ap_configure %s %s", cfg.SSID, cfg.AuthMode)
	f.apCfg = cfg
	return nil
}

// Reboot implements radio.Rebooter
func (f *Fake) Reboot(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("reboot")
	f.rebooted++
	return nil
}

// Associate forces an association, as if the platform rejoined on its own
func (f *Fake) Associate(ssid string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.associated = true
	f.network = ssid
	f.pending = ""
}

// Drop clears the association without recording a Disconnect call
func (f *Fake) Drop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.associated = false
	f.network = ""
}

// Attempts returns every ssid passed to Connect, in order
func (f *Fake) Attempts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.attempts...)
}

// Calls returns the call log
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Network returns the associated ssid, empty when unassociated
func (f *Fake) Network() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.network
}

// APOn reports whether the access point is active
func (f *Fake) APOn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.apOn
}

// StationOn reports whether the station interface is active
func (f *Fake) StationOn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stationOn
}

// APConfig returns the last access point configuration
func (f *Fake) APConfig() radio.APConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.apCfg
}

// Reboots returns how many times Reboot was called
func (f *Fake) Reboots() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rebooted
}
