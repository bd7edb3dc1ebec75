package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dshills/pydocgen-mcp/internal/config"
	"github.com/dshills/pydocgen-mcp/internal/generator"
	"github.com/dshills/pydocgen-mcp/internal/store"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the pydocgen CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree. The
// logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "pydocgen",
		Short:        "pydocgen inserts generated docstrings into Python source",
		Long:         `pydocgen scans Python source for undocumented functions, methods, and classes, generates docstrings in Google or NumPy style, and splices them in without disturbing any existing line.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("pydocgen %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file (default: "+config.DefaultFileName+" if present)")

	root.AddCommand(newDocumentCmd(&configPath))
	root.AddCommand(newTreeCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMCPCmd())

	return root.ExecuteContext(context.Background())
}

// loadConfig resolves the effective configuration from --config or the
// default file in the working directory. Only the default file may be
// absent; a named --config that does not exist is an error.
func loadConfig(path string) (config.Config, error) {
	return config.Load(path)
}

// buildGenerator constructs the generator from config, wiring the
// persistent docstring cache when one is configured. The returned cleanup
// closes the cache and is never nil.
func buildGenerator(ctx context.Context, cfg config.Config) (*generator.Generator, func(), error) {
	logger := loggerFromContext(ctx)
	cleanup := func() {}

	var extra []generator.Option
	if cachePath, err := cfg.CachePath(); err != nil {
		logger.Warnf("Persistent cache disabled: %v", err)
	} else if cachePath != "" {
		st, err := store.Open(cachePath)
		if err != nil {
			logger.Warnf("Persistent cache disabled: %v", err)
		} else {
			extra = append(extra, generator.WithStore(st))
			cleanup = func() { _ = st.Close() }
		}
	}

	providerName := cfg.Provider.Name
	if providerName == "" {
		providerName = generator.DetectProvider()
	}

	gen, err := generator.NewFromConfig(generator.Config{
		Provider:  providerName,
		Model:     cfg.Provider.Model,
		CacheSize: cfg.Cache.Size,
	}, extra...)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	logger.Debug("generator ready", "provider", gen.Provider())
	return gen, cleanup, nil
}
