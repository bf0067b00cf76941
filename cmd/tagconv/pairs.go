package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pairsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "List registered conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range a.set.Registry.Pairs() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}

			return nil
		},
	}
}
