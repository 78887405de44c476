package module

import (
	"testing"
	"time"

	"wifiman/internal/core/radio"
	"wifiman/internal/core/radio/radiotest"
	"wifiman/internal/modkit"
	"wifiman/internal/platform/config"
	perr "wifiman/internal/platform/errors"
	kit "wifiman/internal/platform/testkit"
)

func TestFromConfigDefaults(t *testing.T) {
	o := FromConfig(config.New().Prefix("PV_T1_"))
	if o.APSSID != "WifiManager" || o.APPassword != "wifimanager" || o.APMinPasswordLen != 8 {
		t.Fatalf("ap = %+v", o)
	}
	if o.APAuthMode != radio.AuthWPA2PSK || o.RebootOnSuccess || o.WatchInterval != 10*time.Second {
		t.Fatalf("policy = %+v", o)
	}
}

func TestFromConfigRejectsUnknownAuthMode(t *testing.T) {
	t.Setenv("PV_T2_AP_AUTH_MODE", "wpa3-sae")
	kit.MustPanic(t, func() { _ = FromConfig(config.New().Prefix("PV_T2_")) })
}

func TestNewOnceAndInvalidAP(t *testing.T) {
	deps := modkit.Deps{Cfg: config.New().Prefix("PV_T3_"), Radio: radiotest.New(nil)}

	m, err := New(deps, Collaborators{}, Options{Once: true, RebootOnSuccess: true})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if o := m.Options(); o.WatchInterval != 0 || !o.RebootOnSuccess {
		t.Fatalf("options = %+v", o)
	}
	if _, ok := m.Ports().(Ports); !ok || m.Name() != "provision" {
		t.Fatalf("ports/name mismatch")
	}

	t.Setenv("PV_T3_AP_PASSWORD", "short")
	if _, err := New(deps, Collaborators{}, Options{}); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
