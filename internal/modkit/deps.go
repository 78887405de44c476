// Package modkit provides module wiring and core deps
package modkit

import (
	"wifiman/internal/core/radio"
	"wifiman/internal/platform/config"
	"wifiman/internal/platform/logger"

	"github.com/spf13/afero"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Radio radio.Radio
	FS    afero.Fs
}

// Filesystem returns FS or the OS filesystem when unset
func (d Deps) Filesystem() afero.Fs {
	if d.FS == nil {
		return afero.NewOsFs()
	}
	return d.FS
}
