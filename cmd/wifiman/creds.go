package main

import (
	"fmt"

	perr "wifiman/internal/platform/errors"
	"wifiman/internal/platform/net/http/bind"

	"github.com/spf13/cobra"
)

func newCredsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creds",
		Short: "Inspect and edit saved networks",
	}
	cmd.AddCommand(newCredsListCommand(), newCredsSetCommand())
	return cmd
}

func newCredsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print saved network names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := newDeps()
			if err != nil {
				return err
			}
			_, store, err := openStore(deps)
			if err != nil {
				return err
			}
			for _, name := range store.Names(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newCredsSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <ssid> <password>",
		Short: "Save or replace the secret for a network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bind.Get().Validator.Var(args[0], "required,ssid"); err != nil {
				return perr.InvalidArgf("ssid must be 1-%d bytes without control characters", bind.MaxSSIDBytes)
			}
			deps, err := newDeps()
			if err != nil {
				return err
			}
			_, store, err := openStore(deps)
			if err != nil {
				return err
			}
			if err := store.Put(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[0])
			return nil
		},
	}
}
