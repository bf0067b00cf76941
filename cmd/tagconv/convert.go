package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	tagsets "github.com/gabmars/russian-tagsets"
)

func convertCmd(a *app) *cobra.Command {
	var from, to, word string

	c := &cobra.Command{
		Use:   "convert [TAG...]",
		Short: "Convert tags from one tagset to another",
		Long: `Convert tags from one tagset to another.

Tags are read from the arguments, or one per line from stdin when no
arguments are given. Each converted tag is printed on its own line.`,
		Example: `  tagconv convert --from mystem --to opencorpora-int 'S,жен,неод=(вин,мн|род,мн)'
  echo 'NOUN,femn,inan' | tagconv convert --from opencorpora-int --to opencorpora`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := a.set.Registry.Lookup(from, to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			convert := func(tag string) error {
				res, err := fn(tag, word)
				if err != nil {
					return fmt.Errorf("convert %q: %w", tag, err)
				}

				a.log.Debug().Str("from", from).Str("to", to).Str("tag", tag).Str("result", res).Msg("converted")
				fmt.Fprintln(out, res)

				return nil
			}

			if len(args) > 0 {
				for _, tag := range args {
					if err := convert(tag); err != nil {
						return err
					}
				}

				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				tag := strings.TrimRight(scanner.Text(), "\r")
				if strings.TrimSpace(tag) == "" {
					continue
				}

				if err := convert(tag); err != nil {
					return err
				}
			}

			return scanner.Err()
		},
	}

	c.Flags().StringVarP(&from, "from", "f", tagsets.Mystem, "source tagset")
	c.Flags().StringVarP(&to, "to", "t", tagsets.OpenCorporaInternal, "target tagset")
	c.Flags().StringVarP(&word, "word", "w", "", "word form passed to the converter as context")

	return c
}
