package cmdradio

import "wifiman/internal/platform/config"

// FromConfig reads RADIO_* keys; unset keys keep the nmcli defaults
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("RADIO_")
	def := Defaults()
	return Options{
		Iface:            c.MayString("IFACE", def.Iface),
		CmdTimeout:       c.MayDuration("CMD_TIMEOUT", def.CmdTimeout),
		APProfile:        c.MayString("AP_PROFILE", def.APProfile),
		StationCmd:       c.MayString("STATION_CMD", def.StationCmd),
		APUpCmd:          c.MayString("AP_UP_CMD", def.APUpCmd),
		APDownCmd:        c.MayString("AP_DOWN_CMD", def.APDownCmd),
		StatusCmd:        c.MayString("STATUS_CMD", def.StatusCmd),
		ConnectCmd:       c.MayString("CONNECT_CMD", def.ConnectCmd),
		ConnectOpenCmd:   c.MayString("CONNECT_OPEN_CMD", def.ConnectOpenCmd),
		DisconnectCmd:    c.MayString("DISCONNECT_CMD", def.DisconnectCmd),
		ScanCmd:          c.MayString("SCAN_CMD", def.ScanCmd),
		IPConfigCmd:      c.MayString("IPCONFIG_CMD", def.IPConfigCmd),
		APConfigureCmd:   c.MayString("AP_CONFIGURE_CMD", def.APConfigureCmd),
		APShowCmd:        c.MayString("AP_SHOW_CMD", def.APShowCmd),
		APCreateCmd:      c.MayString("AP_CREATE_CMD", def.APCreateCmd),
		RebootCmd:        c.MayString("REBOOT_CMD", def.RebootCmd),
		AssociatedMarker: c.MayString("ASSOCIATED_MARKER", def.AssociatedMarker),
	}
}
