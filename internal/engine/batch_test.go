package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestProcessTree_EveryFileGetsAnEntry(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "good.py"), "def f(x):\n    return x\n")
	writeFile(t, filepath.Join(root, "pkg", "also_good.py"), "def g():\n    return 1\n")
	writeFile(t, filepath.Join(root, "broken.py"), "def broken(a,\n")

	result, err := templateEngine().ProcessTree(context.Background(), root, Options{Concurrency: 2})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, root, result.Root)
	require.Len(t, result.Files, 3)

	assert.Equal(t, 3, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesFailed)
	assert.Equal(t, 2, result.Stats.Inserted)

	broken := result.Files[filepath.Join(root, "broken.py")]
	assert.False(t, broken.OK())
	assert.Contains(t, broken.Err, "never closed")

	good := result.Files[filepath.Join(root, "good.py")]
	assert.True(t, good.OK())
	assert.Equal(t, 1, good.Inserted)
	assert.Contains(t, good.Output, "Brief description of f.")

	require.Len(t, result.Failed(), 1)
	require.Len(t, result.Errors(), 1)
	assert.Contains(t, result.Errors()[0], "broken.py")
}

func TestProcessTree_EmptyInitFileSucceeds(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "__init__.py"), "")
	writeFile(t, filepath.Join(root, "pkg", "mod.py"), "def f(x):\n    return x\n")

	result, err := templateEngine().ProcessTree(context.Background(), root, Options{
		Concurrency: 1,
		OutputRoot:  out,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 0, result.Stats.FilesFailed)

	init := result.Files[filepath.Join(root, "pkg", "__init__.py")]
	assert.True(t, init.OK())
	assert.Equal(t, 0, init.Inserted)
	assert.Equal(t, "", init.Output)

	written, err := os.ReadFile(filepath.Join(out, "pkg", "__init__.py"))
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestProcessTree_MirroredOutput(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(root, "a.py"), "def a():\n    return 1\n")
	writeFile(t, filepath.Join(root, "sub", "b.py"), "def b():\n    return 2\n")

	_, err := templateEngine().ProcessTree(context.Background(), root, Options{
		Concurrency: 1,
		OutputRoot:  out,
	})
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(out, "a.py"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "Brief description of a.")

	nested, err := os.ReadFile(filepath.Join(out, "sub", "b.py"))
	require.NoError(t, err)
	assert.Contains(t, string(nested), "Brief description of b.")
}

func TestProcessTree_FailedFilesNotWritten(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(root, "broken.py"), "def broken(a,\n")

	result, err := templateEngine().ProcessTree(context.Background(), root, Options{
		Concurrency: 1,
		OutputRoot:  out,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesFailed)

	_, statErr := os.Stat(filepath.Join(out, "broken.py"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcessTree_IgnoredDirectoriesPruned(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.py"), "def k():\n    return 1\n")
	writeFile(t, filepath.Join(root, ".venv", "skip.py"), "def s():\n    return 1\n")
	writeFile(t, filepath.Join(root, "__pycache__", "skip.py"), "def s():\n    return 1\n")
	writeFile(t, filepath.Join(root, "custom", "skip.py"), "def s():\n    return 1\n")

	result, err := templateEngine().ProcessTree(context.Background(), root, Options{
		Concurrency: 1,
		IgnoreNames: append(DefaultIgnoreNames(), "custom"),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	_, ok := result.Files[filepath.Join(root, "keep.py")]
	assert.True(t, ok)
}

func TestProcessTree_NonPythonFilesSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "readme.md"), "# notes\n")
	writeFile(t, filepath.Join(root, "script.py"), "def s():\n    return 1\n")

	result, err := templateEngine().ProcessTree(context.Background(), root, Options{Concurrency: 1})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
}

func TestProcessTree_EmptyTree(t *testing.T) {
	result, err := templateEngine().ProcessTree(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Equal(t, 0, result.Stats.FilesProcessed)
}

func TestProcessTree_MissingRoot(t *testing.T) {
	_, err := templateEngine().ProcessTree(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{})
	assert.Error(t, err)
}

func TestProcessTree_SequentialAndConcurrentAgree(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.py", "b.py", "c.py", "d.py"} {
		writeFile(t, filepath.Join(root, name), "def fn_"+name[:1]+"(x):\n    return x\n")
	}

	sequential, err := templateEngine().ProcessTree(context.Background(), root, Options{Concurrency: 1})
	require.NoError(t, err)
	concurrent, err := templateEngine().ProcessTree(context.Background(), root, Options{Concurrency: 4})
	require.NoError(t, err)

	assert.Equal(t, sequential.Stats.FilesProcessed, concurrent.Stats.FilesProcessed)
	assert.Equal(t, sequential.Stats.Inserted, concurrent.Stats.Inserted)
	for path, fr := range sequential.Files {
		assert.Equal(t, fr.Output, concurrent.Files[path].Output)
	}
}

func TestProcessTree_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.py"), "def a():\n    return 1\n")
	writeFile(t, filepath.Join(root, "b.py"), "def b():\n    return 2\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := templateEngine().ProcessTree(ctx, root, Options{Concurrency: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
