package processor

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
	"github.com/nguyentantai21042004/minutes-flow/internal/report"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
)

type stubPipeline struct {
	err  error
	seen pipeline.Source
	body string
}

func (s *stubPipeline) Run(ctx context.Context, src pipeline.Source) (*pipeline.Result, error) {
	s.seen = src
	data, _ := io.ReadAll(src.Body)
	s.body = string(data)
	if s.err != nil {
		return nil, s.err
	}
	return &pipeline.Result{
		RunID:    "run-1",
		Filename: src.Filename,
		Minutes:  &summarizer.Minutes{AbstractSummary: "a", KeyPoints: "k", ActionItems: "i", Sentiment: "s"},
	}, nil
}

func setup(t *testing.T, p pipeline.Pipeline) (Processor, config.PathsConfig) {
	t.Helper()
	root := t.TempDir()
	paths := config.PathsConfig{
		Input:    filepath.Join(root, "input"),
		Output:   filepath.Join(root, "output"),
		Archived: filepath.Join(root, "archived"),
		Temp:     filepath.Join(root, "temp"),
	}
	if err := os.MkdirAll(paths.Input, 0755); err != nil {
		t.Fatal(err)
	}

	log := logger.New("error", logger.FormatText)
	reports, err := report.New(report.Options{Formats: []string{report.FormatJSON, report.FormatMarkdown}}, log)
	if err != nil {
		t.Fatal(err)
	}
	return New(paths, p, reports, log), paths
}

func writeRecording(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcess(t *testing.T) {
	stub := &stubPipeline{}
	proc, paths := setup(t, stub)
	audioPath := writeRecording(t, paths.Input, "retro.mp3")

	reports, err := proc.Process(context.Background(), audioPath)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if stub.seen.Filename != "retro.mp3" || stub.seen.Size != 5 || stub.body != "audio" {
		t.Errorf("pipeline saw %+v with body %q", stub.seen, stub.body)
	}
	if len(reports) != 2 {
		t.Fatalf("reports = %v", reports)
	}
	for _, r := range reports {
		if filepath.Dir(r) != paths.Output || !strings.HasPrefix(filepath.Base(r), "retro.") {
			t.Errorf("unexpected report path %s", r)
		}
	}

	if _, err := os.Stat(audioPath); !os.IsNotExist(err) {
		t.Error("recording still in inbox")
	}
	if _, err := os.Stat(filepath.Join(paths.Archived, "retro.mp3")); err != nil {
		t.Errorf("recording not archived: %v", err)
	}
}

func TestProcessFailureKeepsRecording(t *testing.T) {
	stub := &stubPipeline{err: &pipeline.Error{Category: pipeline.CategoryService, Err: errors.New("timeout")}}
	proc, paths := setup(t, stub)
	audioPath := writeRecording(t, paths.Input, "retro.mp3")

	_, err := proc.Process(context.Background(), audioPath)
	if pipeline.CategoryOf(err) != pipeline.CategoryService {
		t.Fatalf("Process() error = %v, want service error", err)
	}
	if _, err := os.Stat(audioPath); err != nil {
		t.Errorf("recording should stay in the inbox: %v", err)
	}
	if entries, _ := os.ReadDir(paths.Output); len(entries) != 0 {
		t.Errorf("reports written for a failed run: %d", len(entries))
	}
}

func TestProcessMissingFile(t *testing.T) {
	stub := &stubPipeline{}
	proc, paths := setup(t, stub)

	_, err := proc.Process(context.Background(), filepath.Join(paths.Input, "gone.wav"))
	if !errors.Is(err, pipeline.ErrMissingFile) {
		t.Errorf("Process() error = %v, want ErrMissingFile", err)
	}
	if stub.seen.Filename != "" {
		t.Error("pipeline should not run for a missing file")
	}
}

func TestArchiveDoesNotOverwrite(t *testing.T) {
	proc, paths := setup(t, &stubPipeline{})
	if err := os.MkdirAll(paths.Archived, 0755); err != nil {
		t.Fatal(err)
	}
	existing := writeRecording(t, paths.Archived, "retro.mp3")

	if _, err := proc.Process(context.Background(), writeRecording(t, paths.Input, "retro.mp3")); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	entries, err := os.ReadDir(paths.Archived)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("archived entries = %d, want 2", len(entries))
	}
	if _, err := os.Stat(existing); err != nil {
		t.Errorf("existing archive replaced: %v", err)
	}
}
