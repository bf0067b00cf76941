package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/gabmars/russian-tagsets/mystem"
)

func parseCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse TAG",
		Short: "Dump the parsed structure of a Mystem tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
			fmt.Fprint(cmd.OutOrStdout(), cfg.Sdump(mystem.ParseTag(args[0])))

			return nil
		},
	}
}
