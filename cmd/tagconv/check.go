package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabmars/russian-tagsets/internal/audit"
)

func checkCmd(a *app) *cobra.Command {
	var quiet bool

	c := &cobra.Command{
		Use:   "check",
		Short: "Audit the built-in tables for consistency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := audit.Run(a.set.Mystem, a.set.OpenCorpora)

			for _, d := range res.All() {
				if quiet && d.Code == audit.CodeTableSize {
					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Severity, d)
			}

			a.log.Info().
				Int("errors", len(res.Errors)).
				Int("warnings", len(res.Warnings)).
				Msg("audit finished")

			if err := res.Error(); err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			return nil
		},
	}

	c.Flags().BoolVarP(&quiet, "quiet", "q", false, "omit table size information")

	return c
}
