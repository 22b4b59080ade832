package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dendrascience/dirtidy/dupes"
	"github.com/dendrascience/dirtidy/util"
)

// NewDupesCmd creates and returns the dupes subcommand for the dirtidy CLI.
// It reports sets of files with identical content and the space they waste.
func NewDupesCmd() *cobra.Command {
	var (
		recursive bool
		minSize   string
		exclude   []string
	)

	cmd := &cobra.Command{
		Use:   "dupes DIRECTORY",
		Short: "Find duplicate files by content hash",
		Long: `Find files with identical content in DIRECTORY.

Files are first grouped by size. Only files that share their size with at
least one other file are read and hashed with SHA-256, so files with a unique
size are never opened. Each duplicate set is listed with its size, followed by
the total space that removing all but one copy would recover.

Nothing is modified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDupes(cmd, args[0], recursive, minSize, exclude)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Scan all subdirectories")
	cmd.Flags().StringVar(&minSize, "min-size", "", "Ignore files smaller than this size, e.g. 4KB or 1MiB")
	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil, "Skip paths matching this glob, relative to DIRECTORY (repeatable)")

	return cmd
}

func runDupes(cmd *cobra.Command, directory string, recursive bool, minSize string, exclude []string) error {
	env, err := newRunEnv(cmd)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("min-size") {
		minSize = env.cfg.MinSize
	}
	minBytes, err := util.ParseSize(minSize)
	if err != nil {
		return err
	}

	finder, err := dupes.NewFinder(
		env.fs,
		env.log,
		dupes.NewNotifier(cmd.OutOrStdout(), env.colorize),
		dupes.Options{
			Recursive: recursive,
			MinSize:   minBytes,
			Exclude:   exclude,
			ChunkSize: env.cfg.ChunkSize,
		},
	)
	if err != nil {
		return err
	}

	report, err := finder.Find(directory)
	if err != nil {
		return err
	}
	env.log.WithFields(logrus.Fields{
		"scanned":    report.Scanned,
		"candidates": report.Candidates,
		"hashed":     report.Hashed,
		"unreadable": len(report.Unreadable),
	}).Debug("scan complete")
	return nil
}
