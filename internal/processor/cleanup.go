package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// moveToArchived moves a processed recording out of the inbox. An existing
// file with the same name is never overwritten.
func (p *implProcessor) moveToArchived(ctx context.Context, audioPath string) error {
	if err := os.MkdirAll(p.paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.paths.Archived, filepath.Base(audioPath))
	if _, err := os.Stat(destPath); err == nil {
		ext := filepath.Ext(destPath)
		destPath = fmt.Sprintf("%s-%s%s", strings.TrimSuffix(destPath, ext), time.Now().Format("20060102-150405"), ext)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat archived file: %w", err)
	}

	p.logger.Info(ctx, "Archiving: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
