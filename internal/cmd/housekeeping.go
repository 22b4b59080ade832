package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/dendrascience/dirtidy/tidy"
)

// NewRenameCmd creates and returns the rename subcommand for the dirtidy CLI.
func NewRenameCmd() *cobra.Command {
	opts := tidy.DefaultRenameOptions()

	cmd := &cobra.Command{
		Use:   "rename DIRECTORY",
		Short: "Batch rename files with a prefix and sequence number",
		Long: `Rename every file in DIRECTORY, in name order, to
<prefix><zero-padded number><original extension>.

Existing files are never overwritten; a file whose new name is already taken
is left alone and reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}
			result, err := tidy.NewTidier(env.fs, cmd.OutOrStdout(), env.log).Rename(args[0], opts)
			if err != nil {
				return err
			}
			reportFailures(env, "rename", result.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Prefix, "prefix", opts.Prefix, "Prefix for renamed files")
	cmd.Flags().IntVar(&opts.Start, "start", opts.Start, "Starting number")
	cmd.Flags().IntVar(&opts.Padding, "padding", opts.Padding, "Zero-padding width")
	cmd.Flags().StringVar(&opts.Ext, "ext", "", "Only rename files with this extension")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview changes without renaming")

	return cmd
}

// NewCleanCmd creates and returns the clean subcommand for the dirtidy CLI.
func NewCleanCmd() *cobra.Command {
	opts := tidy.CleanOptions{MaxAgeDays: 30}

	cmd := &cobra.Command{
		Use:   "clean DIRECTORY",
		Short: "Delete files older than a number of days",
		Long: `Delete files directly inside DIRECTORY whose modification time is older
than --days days. Subdirectories are never touched. Useful for keeping a
Downloads folder from growing forever.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}
			result, err := tidy.NewTidier(env.fs, cmd.OutOrStdout(), env.log).Clean(args[0], opts)
			if err != nil {
				return err
			}
			reportFailures(env, "clean", result.Failed)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.MaxAgeDays, "days", opts.MaxAgeDays, "Delete files older than this many days")
	cmd.Flags().StringSliceVar(&opts.Exclude, "exclude", nil, "File extensions to keep, e.g. .pdf,.docx (repeatable)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview deletions without removing files")

	return cmd
}

// NewSortCmd creates and returns the sort subcommand for the dirtidy CLI.
func NewSortCmd() *cobra.Command {
	var (
		categoriesPath string
		dryRun         bool
	)

	cmd := &cobra.Command{
		Use:   "sort DIRECTORY",
		Short: "Sort files into folders by extension",
		Long: `Move files directly inside DIRECTORY into category subfolders
(images, documents, audio, video, archives, code, other) based on their
extension. Files without an extension are skipped.

--categories points to a YAML file mapping folder names to extension lists
that replaces the built-in table:

  photos: [.jpg, .heic]
  notes: [md, txt]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}
			opts := tidy.SortOptions{DryRun: dryRun}
			if categoriesPath != "" {
				if opts.Categories, err = loadCategoriesFile(categoriesPath); err != nil {
					return err
				}
			}
			result, err := tidy.NewTidier(env.fs, cmd.OutOrStdout(), env.log).Sort(args[0], opts)
			if err != nil {
				return err
			}
			reportFailures(env, "sort", result.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&categoriesPath, "categories", "", "YAML file with custom extension categories")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview moves without changing anything")

	return cmd
}

func loadCategoriesFile(path string) (tidy.Categories, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening categories file: %w", err)
	}
	defer f.Close()
	return tidy.LoadCategories(f)
}

func reportFailures(env runEnv, op string, failed *multierror.Error) {
	if err := failed.ErrorOrNil(); err != nil {
		env.log.WithError(err).WithField("failures", len(failed.Errors)).Errorf("%s finished with errors", op)
	}
}
