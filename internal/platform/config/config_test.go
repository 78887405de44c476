package config

import (
	"testing"
	"time"

	kit "wifiman/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	ap := New().Prefix("WIFIMAN_").Prefix("AP_")
	if got := ap.Key("SSID"); got != "WIFIMAN_AP_SSID" {
		t.Fatalf("Key() = %q, want WIFIMAN_AP_SSID", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("T_")
	t.Setenv("T_NAME", "  wifiman ")
	if got := c.MustString("NAME"); got != "wifiman" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMayStringAndSecret(t *testing.T) {
	c := New().Prefix("S_")
	t.Setenv("S_PASS", " padded ")
	if got := c.MayString("PASS", "x"); got != "padded" {
		t.Fatalf("MayString = %q, want trimmed", got)
	}
	if got := c.MaySecret("PASS", "x"); got != " padded " {
		t.Fatalf("MaySecret = %q, want untrimmed", got)
	}
	if got := c.MaySecret("MISSING", "def"); got != "def" {
		t.Fatalf("MaySecret default = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	t.Setenv("I_OK", " 100 ")
	t.Setenv("I_BAD", "lots")
	if got := c.MayInt("OK", 0); got != 100 {
		t.Fatalf("MayInt ok = %d", got)
	}
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad = %d, want default", got)
	}
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt missing = %d, want default", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	t.Setenv("B_ON", "true")
	t.Setenv("B_BAD", "perhaps")
	if !c.MayBool("ON", false) {
		t.Fatalf("MayBool expected true")
	}
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool bad should fall back to false")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("D_")
	t.Setenv("D_OK", "150ms")
	t.Setenv("D_NEG", "-1s")
	t.Setenv("D_BAD", "soon")
	if got := c.MayDuration("OK", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration ok = %v", got)
	}
	if got := c.MayDuration("NEG", time.Second); got != time.Second {
		t.Fatalf("MayDuration negative = %v, want default", got)
	}
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad = %v, want default", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	t.Setenv("CSV_ORIGINS", " http://a, ,http://b ,, ")
	got := c.MayCSV("ORIGINS", nil)
	if len(got) != 2 || got[0] != "http://a" || got[1] != "http://b" {
		t.Fatalf("MayCSV = %#v", got)
	}
	t.Setenv("CSV_EMPTY", " , ")
	if got := c.MayCSV("EMPTY", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("MayCSV all-blank = %#v, want default", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISSING", "wpa2-psk", "open", "wpa2-psk"); got != "wpa2-psk" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_MODE", "OPEN")
	if got := c.MayEnum("MODE", "wpa2-psk", "open", "wpa2-psk"); got != "open" {
		t.Fatalf("MayEnum = %q, want open", got)
	}
	t.Setenv("E_BAD", "wpa9")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "open", "open", "wpa2-psk") })
}

func TestMayAddr(t *testing.T) {
	c := New().Prefix("A_")
	t.Setenv("A_OK", "127.0.0.1:8787")
	t.Setenv("A_PORT_ONLY", ":80")
	t.Setenv("A_BAD", "eighty")
	t.Setenv("A_OOB", ":70000")

	if got := c.MayAddr("OK", ":1"); got != "127.0.0.1:8787" {
		t.Fatalf("MayAddr ok = %q", got)
	}
	if got := c.MayAddr("PORT_ONLY", ":1"); got != ":80" {
		t.Fatalf("MayAddr port-only = %q", got)
	}
	if got := c.MayAddr("BAD", ":1"); got != ":1" {
		t.Fatalf("MayAddr bad = %q, want default", got)
	}
	if got := c.MayAddr("OOB", ":1"); got != ":1" {
		t.Fatalf("MayAddr out of range = %q, want default", got)
	}
}
