package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type seedOptions struct {
	output   string
	count    int
	distinct int
	depth    int
	seed     uint64
}

// NewSeedCmd creates and returns the seed subcommand for the dirtidy CLI.
// It generates a directory tree full of duplicate files to try dupes on.
func NewSeedCmd() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a fixture tree with duplicate files",
		Long: `Generate test files for trying out the dupes command.

Files are spread over a small tree of nested directories. Each file's content
is drawn from a pool of --distinct UUID-based payloads of varying length, so
most files have at least one exact copy somewhere in the tree. The same
--seed always produces the same tree. Progress is logged with --verbose.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}
			return runSeed(env.fs, env.log, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&opts.count, "count", "c", 1000, "Number of files to generate")
	cmd.Flags().IntVar(&opts.distinct, "distinct", 50, "Number of distinct file contents")
	cmd.Flags().IntVar(&opts.depth, "depth", 3, "Maximum directory nesting")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "Random seed")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(fsys afero.Fs, log logrus.FieldLogger, out io.Writer, opts seedOptions) error {
	if opts.count < 0 || opts.distinct < 1 || opts.depth < 0 {
		return fmt.Errorf("count and depth must not be negative and distinct must be at least 1")
	}

	var key [32]byte
	for i := range 8 {
		key[i] = byte(opts.seed >> (8 * i))
	}
	src := rand.NewChaCha8(key)
	rng := rand.New(src)

	// Generate pool of payloads; repeating the UUID varies the size.
	pool := make([]string, opts.distinct)
	for i := range pool {
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return fmt.Errorf("generating uuid: %w", err)
		}
		pool[i] = strings.Repeat(id.String()+"\n", 1+i%4)
	}

	if err := fsys.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	dirFileCounts := make(map[string]int)
	for n := range opts.count {
		dirPath := opts.output
		for level := rng.IntN(opts.depth + 1); level > 0; level-- {
			dirPath = filepath.Join(dirPath, fmt.Sprintf("dir-%02d", rng.IntN(4)))
		}
		if err := fsys.MkdirAll(dirPath, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dirPath, err)
		}

		filePath := filepath.Join(dirPath, fmt.Sprintf("file-%06d.txt", n))
		content := pool[rng.IntN(len(pool))]
		if err := afero.WriteFile(fsys, filePath, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", filePath, err)
		}
		dirFileCounts[dirPath]++

		if (n+1)%1000 == 0 {
			log.WithField("output", opts.output).Debugf("created %d/%d files", n+1, opts.count)
		}
	}

	fmt.Fprintf(out, "Created %d files across %d directories in %s\n", opts.count, len(dirFileCounts), opts.output)
	return nil
}
