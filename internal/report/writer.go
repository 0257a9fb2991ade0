package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
)

func (w *implWriter) Write(ctx context.Context, res *pipeline.Result, dir string) ([]string, error) {
	if res == nil || res.Minutes == nil {
		return nil, fmt.Errorf("report: no minutes to write")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	base := filepath.Join(dir, BaseName(res.Filename))
	paths := make([]string, 0, len(w.opts.Formats))

	for _, format := range w.opts.Formats {
		path := base + "." + format
		var err error
		switch format {
		case FormatJSON:
			err = writeFile(path, func(f *os.File) error { return JSON(f, res) })
		case FormatMarkdown:
			err = os.WriteFile(path, []byte(Markdown(res, w.opts.IncludeTranscript)), 0644)
		case FormatDOCX:
			err = minutesToDocx(res, w.opts.IncludeTranscript, path)
		}
		if err != nil {
			return paths, fmt.Errorf("write %s report: %w", format, err)
		}

		w.logger.Info(ctx, "Report written: %s", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// BaseName strips the directory and extension of a recording name.
func BaseName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func writeFile(path string, fill func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
