package main

import (
	"bytes"
	"strings"
	"testing"

	"wifiman/internal/core/radio"
	"wifiman/internal/core/radio/radiotest"
	"wifiman/internal/modkit/module"
	"wifiman/internal/platform/config"
	kit "wifiman/internal/platform/testkit"

	"github.com/spf13/afero"
)

func withFakes(t *testing.T, f *radiotest.Fake) afero.Fs {
	t.Helper()
	kit.Serial(t)
	fs := afero.NewMemMapFs()
	kit.Swap(t, &rootConf, func() config.Conf { return config.New().Prefix("WMT_") })
	kit.Swap(t, &newRadio, func(config.Conf) (radio.Radio, error) { return f, nil })
	kit.Swap(t, &newFS, func() afero.Fs { return fs })
	t.Setenv("WMT_STORE_PATH", "/var/lib/wifiman/wifi.dat")
	t.Setenv("WMT_STATUS_ENABLED", "false")
	t.Cleanup(module.Reset)
	return fs
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCredsSetAndList(t *testing.T) {
	withFakes(t, radiotest.New(nil))

	if out, err := execute(t, "creds", "set", "home", "hunter2"); err != nil || !strings.Contains(out, "saved home") {
		t.Fatalf("set: %q %v", out, err)
	}
	if _, err := execute(t, "creds", "set", "lab", "x"); err != nil {
		t.Fatalf("set lab: %v", err)
	}
	out, err := execute(t, "creds", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "home\nlab\n" {
		t.Fatalf("list = %q", out)
	}
	kit.MustNotContain(t, out, "hunter2")
}

func TestCredsSetRejectsBadSSID(t *testing.T) {
	withFakes(t, radiotest.New(nil))
	if _, err := execute(t, "creds", "set", strings.Repeat("x", 33), "pw"); err == nil {
		t.Fatalf("expected an error for a 33-byte ssid")
	}
	if _, err := execute(t, "creds", "set", "only-one-arg"); err == nil {
		t.Fatalf("expected an argument count error")
	}
}

func TestScanPrintsInRadioOrder(t *testing.T) {
	withFakes(t, radiotest.New(nil, "cafe", "home"))
	out, err := execute(t, "scan")
	if err != nil || out != "cafe\nhome\n" {
		t.Fatalf("scan = %q %v", out, err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	kit.MustContain(t, out, "wifiman dev")

	out, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}
	kit.MustContain(t, out, `"service": "wifiman"`)
}

func TestRunOnceJoinsSavedNetwork(t *testing.T) {
	f := radiotest.New(map[string]string{"home": "hunter2"}, "cafe", "home")
	withFakes(t, f)
	t.Setenv("WMT_STATION_POLL_INTERVAL", "1ms")

	if _, err := execute(t, "creds", "set", "home", "hunter2"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := execute(t, "run", "--once"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if f.Network() != "home" {
		t.Fatalf("network = %q", f.Network())
	}
	if got := f.Attempts(); len(got) != 1 || got[0] != "home" {
		t.Fatalf("attempts = %v", got)
	}
	if _, ok := module.Lookup("provision"); !ok {
		t.Fatalf("provision module not registered")
	}
}
