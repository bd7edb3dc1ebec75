package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/pydocgen-mcp/internal/engine"
	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// treeOpts holds the command-line flags for the tree command
type treeOpts struct {
	style       string   // docstring style (google or numpy)
	output      string   // mirrored output directory
	concurrency int      // worker pool size
	ignore      []string // directory names to prune
}

// newTreeCmd creates the tree command for directory processing
func newTreeCmd(configPath *string) *cobra.Command {
	opts := &treeOpts{}

	cmd := &cobra.Command{
		Use:   "tree DIR",
		Short: "Document every Python file under a directory",
		Long: `Tree discovers Python files under DIR, runs the single-file pipeline on
each with bounded parallelism, and writes results to a mirrored output
tree. Files that fail to parse are reported and skipped; they never abort
the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args[0], opts, *configPath)
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "docstring style: google or numpy (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: output_docs under DIR)")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 0, "worker pool size (0 uses the CPU count)")
	cmd.Flags().StringSliceVar(&opts.ignore, "ignore", nil, "directory names to skip (default from config)")

	return cmd
}

func runTree(cmd *cobra.Command, root string, opts *treeOpts, configPath string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	style := cfg.DocStyle()
	if opts.style != "" {
		style = types.DocStyle(opts.style).Normalize()
	}
	concurrency := cfg.Concurrency
	if opts.concurrency > 0 {
		concurrency = opts.concurrency
	}
	ignore := cfg.Ignore
	if opts.ignore != nil {
		ignore = opts.ignore
	}
	outputRoot := opts.output
	if outputRoot == "" {
		outputRoot = filepath.Join(root, "output_docs")
	}

	gen, cleanup, err := buildGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	track := newProgress(logger)
	eng := engine.New(gen, engine.WithStyle(style), engine.WithIndentUnit(cfg.Indent))
	result, err := eng.ProcessTree(ctx, root, engine.Options{
		Concurrency: concurrency,
		IgnoreNames: ignore,
		OutputRoot:  outputRoot,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("process %s: %w", root, err)
	}
	track.done(fmt.Sprintf("Processed %d files, inserted %d docstrings", result.Stats.FilesProcessed, result.Stats.Inserted))

	for _, msg := range result.Errors() {
		logger.Warn(msg)
	}
	if result.Stats.FilesFailed > 0 {
		logger.Warnf("%d of %d files failed", result.Stats.FilesFailed, result.Stats.FilesProcessed)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d files, %d docstrings inserted, output in %s\n",
		result.RunID, result.Stats.FilesProcessed, result.Stats.Inserted, outputRoot)

	return nil
}
