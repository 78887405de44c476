package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Print visible networks in the order the radio reports them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := newDeps()
			if err != nil {
				return err
			}
			if err := deps.Radio.StationActivate(cmd.Context(), true); err != nil {
				deps.Log.Warn().Err(err).Msg("station activate failed")
			}
			names, err := deps.Radio.Scan(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
