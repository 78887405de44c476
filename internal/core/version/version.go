// Package version reports build information for the daemon
package version

import "runtime"

// BuildInfo holds version information about the daemon build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Info returns the build information
// Set via -ldflags "-X 'wifiman/internal/core/version.version=v0.1.0' -X 'wifiman/internal/core/version.commit=abcd'"
func Info() BuildInfo {
	return BuildInfo{
		Service: "wifiman",
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

// String renders the one-line form printed by the version command
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ", " + b.Go + ")"
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
