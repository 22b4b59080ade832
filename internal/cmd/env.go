package cmd

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dendrascience/dirtidy/util"
)

// runEnv bundles what every subcommand needs: merged configuration, a
// logger writing next to the report, and the filesystem to act on.
type runEnv struct {
	cfg      util.Config
	log      *logrus.Logger
	fs       afero.Fs
	colorize bool
}

// newRunEnv loads DIRTIDY_* settings and applies the global flags on top.
func newRunEnv(cmd *cobra.Command) (runEnv, error) {
	cfg, err := util.LoadConfig()
	if err != nil {
		return runEnv{}, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}

	log, err := cfg.NewLogger(cmd.OutOrStdout())
	if err != nil {
		return runEnv{}, err
	}
	return runEnv{
		cfg:      cfg,
		log:      log,
		fs:       afero.NewOsFs(),
		colorize: !cfg.NoColor && !color.NoColor,
	}, nil
}
