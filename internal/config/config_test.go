package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/pydocgen-mcp/pkg/types"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "google", cfg.Style)
	assert.Equal(t, 4, cfg.Indent)
	assert.Contains(t, cfg.Ignore, ".venv")
	assert.Contains(t, cfg.Ignore, "__pycache__")
	assert.Empty(t, cfg.Provider.Name)
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.toml")
}

func TestLoad_DefaultFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("indent = 2\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Indent)
}

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydocgen.toml")
	content := `style = "numpy"
indent = 2
concurrency = 8
ignore = [".git", "build"]

[provider]
name = "anthropic"
model = "claude-3-5-sonnet-20241022"

[cache]
path = "/tmp/cache.db"
size = 128
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "numpy", cfg.Style)
	assert.Equal(t, 2, cfg.Indent)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, []string{".git", "build"}, cfg.Ignore)
	assert.Equal(t, "anthropic", cfg.Provider.Name)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Provider.Model)
	assert.Equal(t, "/tmp/cache.db", cfg.Cache.Path)
	assert.Equal(t, 128, cfg.Cache.Size)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydocgen.toml")
	require.NoError(t, os.WriteFile(path, []byte("style = \"numpy\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "numpy", cfg.Style)
	assert.Equal(t, 4, cfg.Indent)
	assert.Contains(t, cfg.Ignore, ".venv")
}

func TestLoad_UnknownKeysRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydocgen.toml")
	require.NoError(t, os.WriteFile(path, []byte("styel = \"numpy\"\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydocgen.toml")
	require.NoError(t, os.WriteFile(path, []byte("style = [broken\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDocStyle_Normalizes(t *testing.T) {
	assert.Equal(t, types.StyleNumPy, Config{Style: "numpy"}.DocStyle())
	assert.Equal(t, types.StyleGoogle, Config{Style: "rst"}.DocStyle())
	assert.Equal(t, types.StyleGoogle, Config{}.DocStyle())
}

func TestCachePath_PlainPathUnchanged(t *testing.T) {
	path, err := Config{Cache: Cache{Path: "/var/lib/pydocgen/cache.db"}}.CachePath()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/pydocgen/cache.db", path)
}

func TestCachePath_TildeExpanded(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path, err := Config{Cache: Cache{Path: "~/.pydocgen/cache.db"}}.CachePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pydocgen", "cache.db"), path)
}

func TestCachePath_EmptyStaysEmpty(t *testing.T) {
	path, err := Config{}.CachePath()
	require.NoError(t, err)
	assert.Empty(t, path)
}
