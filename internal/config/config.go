// Package config loads pydocgen settings from a TOML file.
//
// Everything is optional; unset fields keep their defaults. Example:
//
//	style = "numpy"
//	indent = 4
//	concurrency = 8
//	ignore = [".git", ".venv", "build"]
//
//	[provider]
//	name = "anthropic"
//	model = "claude-3-5-sonnet-20241022"
//
//	[cache]
//	path = "~/.pydocgen/cache.db"
//	size = 4096
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dshills/pydocgen-mcp/internal/engine"
	"github.com/dshills/pydocgen-mcp/internal/planner"
	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// DefaultFileName is looked up in the working directory when no config
// path is given.
const DefaultFileName = "pydocgen.toml"

// Provider selects and parameterizes the delegated generation capability
type Provider struct {
	Name  string `toml:"name"`
	Model string `toml:"model"`
}

// Cache configures the in-memory and persistent docstring caches
type Cache struct {
	Path string `toml:"path"`
	Size int    `toml:"size"`
}

// Config is the full file-level configuration
type Config struct {
	Style       string   `toml:"style"`
	Indent      int      `toml:"indent"`
	Concurrency int      `toml:"concurrency"`
	Ignore      []string `toml:"ignore"`
	Provider    Provider `toml:"provider"`
	Cache       Cache    `toml:"cache"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Style:  string(types.StyleGoogle),
		Indent: planner.DefaultIndentUnit,
		Ignore: engine.DefaultIgnoreNames(),
	}
}

// Load reads path over the defaults. With an empty path the default
// file name is tried and may be absent; an explicitly named file must
// exist.
func Load(path string) (Config, error) {
	cfg := Default()
	optional := path == ""
	if optional {
		path = DefaultFileName
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// DocStyle returns the configured style, normalized
func (c Config) DocStyle() types.DocStyle {
	return types.DocStyle(c.Style).Normalize()
}

// CachePath expands a leading ~ in the configured cache path
func (c Config) CachePath() (string, error) {
	path := c.Cache.Path
	if path == "" || !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand cache path: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
