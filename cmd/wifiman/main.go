// @title         wifiman status API
// @version       0.1.0
// @description   Local status and control endpoints for the provisioning daemon

// Command wifiman joins a saved Wi-Fi network or raises a captive portal to collect one
package main

import (
	"os"

	"wifiman/internal/platform/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Get().Error().Err(err).Msg("wifiman failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "wifiman",
		Short:         "Wi-Fi provisioning daemon with a captive portal fallback",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newRunCommand(),
		newCredsCommand(),
		newScanCommand(),
		newVersionCommand(),
	)
	return root
}
