// Package cmdradio drives the radio through external commands (nmcli by default)
package cmdradio

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os/exec"
	"strings"
	"time"

	"wifiman/internal/core/radio"
	perr "wifiman/internal/platform/errors"
	"wifiman/internal/platform/logger"

	"github.com/google/shlex"
)

const (
	defaultIface            = "wlan0"
	defaultAPProfile        = "wifiman-ap"
	defaultAssociatedMarker = "(connected)"
	defaultCmdTimeout       = 15 * time.Second
)

// Options configures the Driver
// Templates are split into argv with shell quoting rules first and the
// placeholders {iface} {ap} {ssid} {secret} {auth} {on} are substituted per
// argument afterwards, so a secret with spaces or quotes stays one argument
type Options struct {
	Iface      string
	CmdTimeout time.Duration

	// APProfile names the connection profile used for the access point
	APProfile string

	StationCmd     string
	APUpCmd        string
	APDownCmd      string
	StatusCmd      string
	ConnectCmd     string
	ConnectOpenCmd string
	DisconnectCmd  string
	ScanCmd        string
	IPConfigCmd    string
	APConfigureCmd string
	RebootCmd      string

	// APShowCmd must fail when the AP profile does not exist yet
	APShowCmd   string
	APCreateCmd string

	// AssociatedMarker is searched for in StatusCmd output; a
	// GENERAL.CONNECTION line naming APProfile overrides it
	AssociatedMarker string
}

// Defaults returns nmcli templates
func Defaults() Options {
	return Options{
		Iface:            defaultIface,
		CmdTimeout:       defaultCmdTimeout,
		StationCmd:       "nmcli radio wifi {on}",
		APProfile:        defaultAPProfile,
		APUpCmd:          "nmcli connection up {ap}",
		APDownCmd:        "nmcli connection down {ap}",
		StatusCmd:        "nmcli -t -f GENERAL.STATE,GENERAL.CONNECTION device show {iface}",
		ConnectCmd:       "nmcli --wait 0 device wifi connect {ssid} password {secret} ifname {iface}",
		ConnectOpenCmd:   "nmcli --wait 0 device wifi connect {ssid} ifname {iface}",
		DisconnectCmd:    "nmcli device disconnect {iface}",
		ScanCmd:          "nmcli -t -f SSID device wifi list --rescan yes ifname {iface}",
		IPConfigCmd:      "nmcli -t -f IP4.ADDRESS,IP4.GATEWAY,IP4.DNS device show {iface}",
		APConfigureCmd:   "nmcli connection modify {ap} 802-11-wireless.ssid {ssid} wifi-sec.key-mgmt {auth} wifi-sec.psk {secret}",
		APShowCmd:        "nmcli -t -f NAME connection show {ap}",
		APCreateCmd:      "nmcli connection add type wifi ifname {iface} con-name {ap} autoconnect no ssid {ssid} 802-11-wireless.mode ap ipv4.method shared",
		RebootCmd:        "systemctl reboot",
		AssociatedMarker: defaultAssociatedMarker,
	}
}

// Runner executes argv and returns stdout; a seam for tests
type Runner func(ctx context.Context, argv []string) ([]byte, error)

// Driver implements radio.Radio and radio.Rebooter over commands
type Driver struct {
	opts Options
	tpl  map[string][]string
	run  Runner
	log  logger.Logger
}

var (
	_ radio.Radio    = (*Driver)(nil)
	_ radio.Rebooter = (*Driver)(nil)
)

// New validates and splits every template
// Zero fields in o take the nmcli defaults
func New(o Options, run Runner) (*Driver, error) {
	o = withDefaults(o)
	if run == nil {
		run = execRunner
	}
	d := &Driver{opts: o, tpl: map[string][]string{}, run: run, log: *logger.Named("cmdradio")}
	for name, src := range map[string]string{
		"station":      o.StationCmd,
		"ap_up":        o.APUpCmd,
		"ap_down":      o.APDownCmd,
		"status":       o.StatusCmd,
		"connect":      o.ConnectCmd,
		"connect_open": o.ConnectOpenCmd,
		"disconnect":   o.DisconnectCmd,
		"scan":         o.ScanCmd,
		"ipconfig":     o.IPConfigCmd,
		"ap_configure": o.APConfigureCmd,
		"ap_show":      o.APShowCmd,
		"ap_create":    o.APCreateCmd,
		"reboot":       o.RebootCmd,
	} {
		argv, err := shlex.Split(src)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "radio %s template", name)
		}
		if len(argv) == 0 {
			return nil, perr.InvalidArgf("radio %s template is empty", name)
		}
		d.tpl[name] = argv
	}
	return d, nil
}

func withDefaults(o Options) Options {
	def := Defaults()
	pick := func(v *string, fallback string) {
		if strings.TrimSpace(*v) == "" {
			*v = fallback
		}
	}
	pick(&o.Iface, def.Iface)
	pick(&o.APProfile, def.APProfile)
	pick(&o.StationCmd, def.StationCmd)
	pick(&o.APUpCmd, def.APUpCmd)
	pick(&o.APDownCmd, def.APDownCmd)
	pick(&o.StatusCmd, def.StatusCmd)
	pick(&o.ConnectCmd, def.ConnectCmd)
	pick(&o.ConnectOpenCmd, def.ConnectOpenCmd)
	pick(&o.DisconnectCmd, def.DisconnectCmd)
	pick(&o.ScanCmd, def.ScanCmd)
	pick(&o.IPConfigCmd, def.IPConfigCmd)
	pick(&o.APConfigureCmd, def.APConfigureCmd)
	pick(&o.APShowCmd, def.APShowCmd)
	pick(&o.APCreateCmd, def.APCreateCmd)
	pick(&o.RebootCmd, def.RebootCmd)
	pick(&o.AssociatedMarker, def.AssociatedMarker)
	if o.CmdTimeout <= 0 {
		o.CmdTimeout = def.CmdTimeout
	}
	return o
}

// exec runs the named template with vars substituted
func (d *Driver) exec(ctx context.Context, name string, vars map[string]string) ([]byte, error) {
	pairs := []string{"{iface}", d.opts.Iface, "{ap}", d.opts.APProfile}
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	rep := strings.NewReplacer(pairs...)
	tpl := d.tpl[name]
	argv := make([]string, len(tpl))
	for i, a := range tpl {
		argv[i] = rep.Replace(a)
	}

	ctx, cancel := context.WithTimeout(ctx, d.opts.CmdTimeout)
	defer cancel()
	// argv may hold a passphrase; only the program name is logged
	logger.C(ctx).Debug().Str("cmd", name).Str("prog", argv[0]).Msg("radio command")
	out, err := d.run(ctx, argv)
	if err != nil {
		return out, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeRadio, "%s: %s", name, argv[0]), "cmdradio."+name)
	}
	return out, nil
}

func execRunner(ctx context.Context, argv []string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	var ee *exec.ExitError
	if errors.As(err, &ee) && stderr.Len() > 0 {
		return out, errors.New(strings.TrimSpace(stderr.String()))
	}
	return out, err
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// StationActivate implements radio.Radio
func (d *Driver) StationActivate(ctx context.Context, on bool) error {
	_, err := d.exec(ctx, "station", map[string]string{"on": onOff(on)})
	return err
}

// APActivate implements radio.Radio
func (d *Driver) APActivate(ctx context.Context, on bool) error {
	name := "ap_down"
	if on {
		name = "ap_up"
	}
	_, err := d.exec(ctx, name, map[string]string{"on": onOff(on)})
	return err
}

// IsAssociated implements radio.Radio
// NetworkManager reports a device serving the AP profile as connected too,
// so the active connection name is checked before the state marker
func (d *Driver) IsAssociated(ctx context.Context) (bool, error) {
	out, err := d.exec(ctx, "status", nil)
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(string(out), "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), ":")
		if ok && key == "GENERAL.CONNECTION" && unescapeTerse(val) == d.opts.APProfile {
			return false, nil
		}
	}
	return bytes.Contains(out, []byte(d.opts.AssociatedMarker)), nil
}

// Connect implements radio.Radio; it requests the join and returns
func (d *Driver) Connect(ctx context.Context, ssid, secret string) error {
	name := "connect"
	if secret == "" {
		name = "connect_open"
	}
	_, err := d.exec(ctx, name, map[string]string{"ssid": ssid, "secret": secret})
	return err
}

// Disconnect implements radio.Radio
func (d *Driver) Disconnect(ctx context.Context) error {
	_, err := d.exec(ctx, "disconnect", nil)
	return err
}

// Scan implements radio.Radio; blank names (hidden networks) are dropped
func (d *Driver) Scan(ctx context.Context) ([]string, error) {
	out, err := d.exec(ctx, "scan", nil)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		line = unescapeTerse(strings.TrimRight(line, "\r"))
		if strings.TrimSpace(line) == "" {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}

// unescapeTerse undoes nmcli -t escaping of ':' and '\'
func unescapeTerse(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return strings.NewReplacer(`\:`, ":", `\\`, `\`).Replace(s)
}

// IPConfig implements radio.Radio from "KEY[n]:value" lines
func (d *Driver) IPConfig(ctx context.Context) (radio.IPConfig, error) {
	out, err := d.exec(ctx, "ipconfig", nil)
	if err != nil {
		return radio.IPConfig{}, err
	}
	var cfg radio.IPConfig
	for _, line := range strings.Split(string(out), "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok || val == "" {
			continue
		}
		if i := strings.IndexByte(key, '['); i >= 0 {
			key = key[:i]
		}
		switch key {
		case "IP4.ADDRESS":
			if cfg.IP != "" {
				continue
			}
			if ip, ipnet, err := net.ParseCIDR(val); err == nil {
				cfg.IP = ip.String()
				cfg.Netmask = net.IP(ipnet.Mask).String()
			} else {
				cfg.IP = val
			}
		case "IP4.GATEWAY":
			cfg.Gateway = val
		case "IP4.DNS":
			if cfg.DNS == "" {
				cfg.DNS = val
			}
		}
	}
	return cfg, nil
}

// APConfigure implements radio.Radio; the AP profile is created on first use
func (d *Driver) APConfigure(ctx context.Context, cfg radio.APConfig) error {
	vars := map[string]string{
		"ssid":   cfg.SSID,
		"secret": cfg.Secret,
		"auth":   keyMgmt(cfg.AuthMode),
	}
	if _, err := d.exec(ctx, "ap_show", nil); err != nil {
		d.log.Info().Str("profile", d.opts.APProfile).Msg("ap profile missing; creating it")
		if _, err := d.exec(ctx, "ap_create", vars); err != nil {
			return err
		}
	}
	_, err := d.exec(ctx, "ap_configure", vars)
	return err
}

// keyMgmt maps an auth mode onto nmcli's wifi-sec.key-mgmt values
func keyMgmt(m radio.AuthMode) string {
	switch m {
	case radio.AuthOpen, radio.AuthWEP:
		return "none"
	default:
		return "wpa-psk"
	}
}

// Reboot implements radio.Rebooter
func (d *Driver) Reboot(ctx context.Context) error {
	d.log.Warn().Strs("argv", d.tpl["reboot"]).Msg("rebooting device")
	_, err := d.exec(ctx, "reboot", nil)
	return err
}
