package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	tagsets "github.com/gabmars/russian-tagsets"
	"github.com/gabmars/russian-tagsets/internal/config"
	"github.com/gabmars/russian-tagsets/internal/logging"
)

// app carries state shared by subcommands after the root pre-run.
type app struct {
	cfgFile  string
	logLevel string
	strict   bool

	cfg *config.Config
	log zerolog.Logger
	set *tagsets.Set
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "tagconv",
		Short:         "Convert Russian morphological tags between tagsets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "tagconv.yaml", "config file path (optional)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "fail when a reverse table has colliding values")

	cmd.AddCommand(
		convertCmd(a),
		pairsCmd(a),
		grammemesCmd(a),
		parseCmd(a),
		checkCmd(a),
		versionCmd(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadWithFallback(a.cfgFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.strict {
		cfg.Inversion.Policy = config.InversionStrict
	}

	log, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log

	set, err := tagsets.New(tagsets.WithInversionPolicy(cfg.Policy()))
	if err != nil {
		a.log.Error().Err(err).Stringer("policy", cfg.Policy()).Msg("failed to build tagsets")
		return fmt.Errorf("build tagsets: %w", err)
	}

	a.set = set
	a.log.Debug().
		Stringer("policy", cfg.Policy()).
		Int("pairs", len(set.Registry.Pairs())).
		Int("grammemes", len(set.OpenCorpora.Grammemes())).
		Msg("tagsets ready")

	return nil
}
