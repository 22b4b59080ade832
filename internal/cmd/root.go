package cmd

import (
	"github.com/dendrascience/dirtidy/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the dirtidy CLI.
// It sets up all subcommands, command groups, and global flags.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dirtidy",
		Short: "dirtidy - housekeeping tools for cluttered directories",
		Long: `dirtidy is a set of single-pass housekeeping tools for one directory at a time.

Use subcommands to perform different operations:
  - dupes: Find files with identical content and report reclaimable space
  - rename: Batch rename files with a prefix and sequence number
  - clean: Delete files older than a number of days
  - sort: Move files into folders by extension category
  - seed: Generate a fixture tree containing duplicate files`,
		Version:      version.GetFullVersion(),
		SilenceUsage: true,
	}

	groupAnalysis := "analysis"
	groupHousekeeping := "housekeeping"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupAnalysis,
		Title: "Analysis",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupHousekeeping,
		Title: "Housekeeping",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	dupesCmd := NewDupesCmd()
	renameCmd := NewRenameCmd()
	cleanCmd := NewCleanCmd()
	sortCmd := NewSortCmd()
	seedCmd := NewSeedCmd()
	versionCmd := newVersionCmd()

	dupesCmd.GroupID = groupAnalysis
	renameCmd.GroupID = groupHousekeeping
	cleanCmd.GroupID = groupHousekeeping
	sortCmd.GroupID = groupHousekeeping
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(dupesCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.Fprint(cmd.OutOrStdout(), "dirtidy")
		},
	}
}
