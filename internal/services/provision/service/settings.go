package service

import (
	"strconv"

	"wifiman/internal/core/radio"
	perr "wifiman/internal/platform/errors"
	"wifiman/internal/platform/net/http/bind"
)

// APSettings describes the access point raised for the portal
type APSettings struct {
	SSID     string         `json:"ssid" validate:"required,ssid"`
	Password string         `json:"password" validate:"max=63"`
	AuthMode radio.AuthMode `json:"auth_mode" validate:"oneof=open wep wpa-psk wpa2-psk wpa-wpa2-psk"`
	// MinPasswordLen applies to secured modes; 0 disables the check
	MinPasswordLen int `json:"-"`
}

// Validate checks the settings before any radio is touched
func (a APSettings) Validate() error {
	if err := bind.Struct(a); err != nil {
		return perr.WithOp(err, "provision.ap")
	}
	if a.AuthMode == radio.AuthOpen || a.MinPasswordLen <= 0 {
		return nil
	}
	if err := bind.Get().Validator.Var(a.Password, "min="+strconv.Itoa(a.MinPasswordLen)); err != nil {
		return perr.WithOp(perr.Newf(perr.ErrorCodeValidation, "ap password must be at least %d characters", a.MinPasswordLen), "provision.ap")
	}
	return nil
}

func (a APSettings) radioConfig() radio.APConfig {
	return radio.APConfig{SSID: a.SSID, Secret: a.Password, AuthMode: a.AuthMode}
}
