package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// newWorkspace creates the run-local directory every intermediate file
// of a run lives in.
func (p *implPipeline) newWorkspace(ctx context.Context, runID string) (string, error) {
	if err := os.MkdirAll(p.opts.TempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	dir, err := os.MkdirTemp(p.opts.TempDir, "run-"+runID+"-*")
	if err != nil {
		return "", fmt.Errorf("create run workspace: %w", err)
	}
	p.logger.Debug(ctx, "Workspace: %s", dir)
	return dir, nil
}

// removeWorkspace deletes dir; failure is logged and never returned.
func (p *implPipeline) removeWorkspace(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to remove workspace %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Removed workspace: %s", dir)
	}
}

// store copies body into dir, reading at most limit+1 bytes. The bool is
// false when the body turned out larger than limit.
func store(dir, format string, body io.Reader, limit int64) (string, int64, bool, error) {
	path := filepath.Join(dir, "source."+format)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, false, fmt.Errorf("create source file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(body, limit+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", n, false, fmt.Errorf("write source file: %w", err)
	}
	return path, n, n <= limit, nil
}
