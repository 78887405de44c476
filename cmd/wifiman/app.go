package main

import (
	"wifiman/internal/adapters/radio/cmdradio"
	"wifiman/internal/core/radio"
	"wifiman/internal/modkit"
	"wifiman/internal/modkit/module"
	"wifiman/internal/platform/config"
	"wifiman/internal/platform/logger"
	cdom "wifiman/internal/services/credstore/domain"
	credmod "wifiman/internal/services/credstore/module"

	"github.com/spf13/afero"
)

// seams swapped by tests
var (
	rootConf = func() config.Conf { return config.New().Prefix("WIFIMAN_") }
	newRadio = func(cfg config.Conf) (radio.Radio, error) {
		return cmdradio.New(cmdradio.FromConfig(cfg), nil)
	}
	newFS = func() afero.Fs { return afero.NewOsFs() }
)

// newDeps builds the shared deps every command starts from
func newDeps() (modkit.Deps, error) {
	cfg := rootConf()
	r, err := newRadio(cfg)
	if err != nil {
		return modkit.Deps{}, err
	}
	return modkit.Deps{
		Log:   *logger.Named("wifiman"),
		Cfg:   cfg,
		Radio: r,
		FS:    newFS(),
	}, nil
}

// openStore builds the credential store module and returns its port
func openStore(deps modkit.Deps) (*credmod.Module, cdom.Port, error) {
	m, err := credmod.New(deps, credmod.Options{})
	if err != nil {
		return nil, nil, err
	}
	return m, module.MustPortsOf[cdom.Port](m), nil
}
