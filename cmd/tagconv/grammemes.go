package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gabmars/russian-tagsets/opencorpora"
)

func grammemesCmd(a *app) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "grammemes",
		Short: "Print the OpenCorpora grammeme catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := a.set.OpenCorpora.Grammemes()

			switch format {
			case "text":
				return printGrammemes(cmd, rows)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				defer enc.Close()

				return enc.Encode(struct {
					Grammemes []opencorpora.Grammeme `yaml:"grammemes"`
				}{rows})
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
		},
	}

	c.Flags().StringVar(&format, "format", "text", "output format: text or yaml")

	return c
}

func printGrammemes(cmd *cobra.Command, rows []opencorpora.Grammeme) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUM\tINTERNAL\tEXTERNAL\tPARENT\tDESCRIPTION")

	for _, g := range rows {
		parent := g.Parent
		if parent == "" {
			parent = "-"
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", g.Num, g.Internal, g.External, parent, g.Description)
	}

	return w.Flush()
}
