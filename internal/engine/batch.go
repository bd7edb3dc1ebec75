package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// Options configures a directory run
type Options struct {
	// Concurrency bounds the worker pool. Zero or negative uses the CPU
	// count; 1 forces strictly sequential processing.
	Concurrency int

	// IgnoreNames prunes matching directory names during discovery. Nil
	// uses DefaultIgnoreNames; pruned subtrees are never listed.
	IgnoreNames []string

	// OutputRoot, when set, receives each successfully transformed file at
	// its mirrored relative path. Files are written whole, only after the
	// full single-file pipeline succeeds.
	OutputRoot string

	// Logger receives per-file progress. Nil discards.
	Logger *log.Logger
}

// DefaultIgnoreNames excludes version-control, dependency-cache, and
// virtual-environment directories from discovery.
func DefaultIgnoreNames() []string {
	return []string{".git", ".hg", ".svn", ".venv", "venv", "node_modules", "__pycache__", "output_docs"}
}

// ProcessTree runs the single-file pipeline over every Python file under
// root with bounded parallelism. Per-file failures (parse errors, I/O
// errors) become error entries; they never fail the run. Every discovered
// eligible file yields exactly one entry in the result.
func (e *Engine) ProcessTree(ctx context.Context, root string, opts Options) (*types.BatchResult, error) {
	startTime := time.Now()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ignore := opts.IgnoreNames
	if ignore == nil {
		ignore = DefaultIgnoreNames()
	}

	files, err := discoverFiles(root, ignore)
	if err != nil {
		return nil, fmt.Errorf("discover files: %w", err)
	}
	logger.Debug("discovered files", "root", root, "count", len(files))

	result := &types.BatchResult{
		RunID: uuid.NewString(),
		Root:  root,
		Files: make(map[string]types.FileResult, len(files)),
	}

	workers := opts.Concurrency
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu       sync.Mutex
		failed   int32
		inserted int32
	)

	record := func(path string, fr types.FileResult) {
		if fr.OK() {
			atomic.AddInt32(&inserted, int32(fr.Inserted))
			logger.Debug("documented file", "path", path, "inserted", fr.Inserted)
		} else {
			atomic.AddInt32(&failed, 1)
			logger.Warn("file failed", "path", path, "err", fr.Err)
		}
		mu.Lock()
		result.Files[path] = fr
		mu.Unlock()
	}

	if workers == 1 || len(files) <= 1 {
		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			record(path, e.processFile(ctx, root, path, opts.OutputRoot))
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		semaphore := make(chan struct{}, workers)

		for _, path := range files {
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case semaphore <- struct{}{}:
				}
				defer func() { <-semaphore }()

				record(path, e.processFile(gctx, root, path, opts.OutputRoot))
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return result, err
		}
	}

	result.Stats = types.BatchStats{
		FilesProcessed: len(files),
		FilesFailed:    int(failed),
		Inserted:       int(inserted),
		Duration:       time.Since(startTime),
	}
	return result, nil
}

// processFile runs one file through read -> document -> optional write.
// All failures are captured in the returned FileResult.
func (e *Engine) processFile(ctx context.Context, root, path, outputRoot string) types.FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.FileResult{Err: fmt.Sprintf("read: %v", err)}
	}

	out, n, err := e.DocumentSource(ctx, string(data))
	if err != nil {
		return types.FileResult{Err: err.Error()}
	}

	if outputRoot != "" {
		if err := writeMirrored(root, path, outputRoot, out); err != nil {
			return types.FileResult{Err: fmt.Sprintf("write: %v", err)}
		}
	}

	return types.FileResult{Output: out, Inserted: n}
}

// writeMirrored persists text at path's relative location under
// outputRoot, creating intermediate directories as needed. The text is
// written in one call so cancellation can never leave a half-spliced file.
func writeMirrored(root, path, outputRoot, text string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return err
	}
	dest := filepath.Join(outputRoot, rel)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, []byte(text), 0o644)
}

// discoverFiles lists every Python file under root, pruning ignored
// directory names so excluded subtrees are never walked.
func discoverFiles(root string, ignoreNames []string) ([]string, error) {
	ignore := make(map[string]struct{}, len(ignoreNames))
	for _, name := range ignoreNames {
		ignore[name] = struct{}{}
	}

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if _, skip := ignore[info.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".py") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
