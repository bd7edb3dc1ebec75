package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/dshills/pydocgen-mcp/internal/engine"
	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// documentOpts holds the command-line flags for the document command
type documentOpts struct {
	style  string // docstring style (google or numpy)
	write  bool   // overwrite the input file in place
	output string // output file path (stdout if empty)
	diff   bool   // print a diff instead of the full output
}

// newDocumentCmd creates the document command for single-file processing
func newDocumentCmd(configPath *string) *cobra.Command {
	opts := &documentOpts{}

	cmd := &cobra.Command{
		Use:   "document FILE",
		Short: "Insert docstrings into a single Python file",
		Long: `Document parses one Python file, generates a docstring for every
undocumented function, method, and class, and splices them in. The result
goes to stdout unless --write or --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocument(cmd, args[0], opts, *configPath)
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "docstring style: google or numpy (default from config)")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "overwrite the input file in place")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result to this path instead of stdout")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "print a colorized diff instead of the result")

	return cmd
}

func runDocument(cmd *cobra.Command, path string, opts *documentOpts, configPath string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.write && opts.output != "" {
		return fmt.Errorf("--write and --output are mutually exclusive")
	}
	if !strings.HasSuffix(path, ".py") {
		return fmt.Errorf("%s: only .py files are supported", path)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	style := cfg.DocStyle()
	if opts.style != "" {
		style = types.DocStyle(opts.style).Normalize()
	}

	gen, cleanup, err := buildGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	track := newProgress(logger)
	eng := engine.New(gen, engine.WithStyle(style), engine.WithIndentUnit(cfg.Indent))
	output, inserted, err := eng.DocumentSource(ctx, string(source))
	if err != nil {
		return fmt.Errorf("document %s: %w", path, err)
	}
	track.done(fmt.Sprintf("Inserted %d docstrings into %s", inserted, path))

	switch {
	case opts.diff:
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(source), output, false)
		fmt.Fprint(cmd.OutOrStdout(), dmp.DiffPrettyText(diffs))
	case opts.write:
		if inserted == 0 {
			logger.Debug("no changes, skipping write", "path", path)
			return nil
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	case opts.output != "":
		if err := os.WriteFile(opts.output, []byte(output), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
	default:
		fmt.Fprint(cmd.OutOrStdout(), output)
	}

	return nil
}
