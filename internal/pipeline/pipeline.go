package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/minutes-flow/internal/audio"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
)

// Run moves one recording through received, validated, split,
// transcribing, transcribed, summarizing and completed.
func (p *implPipeline) Run(ctx context.Context, src Source) (*Result, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)

	p.logger.Info(ctx, "Starting run for %s", src.Filename)
	t := newTracker(ctx, p.logger)

	// received -> validated
	if src.Body == nil || src.Filename == "" {
		return nil, t.fail(ctx, CategoryInput, ErrMissingFile)
	}
	format := audio.FormatOf(src.Filename)
	if !audio.IsSupported(format) {
		return nil, t.fail(ctx, CategoryInput, fmt.Errorf("%w: %q (want one of %v)", ErrUnsupportedFormat, src.Filename, audio.Formats))
	}
	if src.Size > p.opts.MaxTotalSize {
		return nil, t.fail(ctx, CategoryInput, fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, src.Size, p.opts.MaxTotalSize))
	}

	dir, err := p.newWorkspace(ctx, runID)
	if err != nil {
		return nil, t.fail(ctx, CategoryResource, err)
	}
	defer p.removeWorkspace(ctx, dir)

	srcPath, size, ok, err := store(dir, format, src.Body, p.opts.MaxTotalSize)
	if err != nil {
		return nil, t.fail(ctx, categorize(ctx, CategoryResource), err)
	}
	if !ok {
		return nil, t.fail(ctx, CategoryInput, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, p.opts.MaxTotalSize))
	}
	t.advance(ctx, StateValidated)
	p.logger.Info(ctx, "Accepted %s: %d bytes, expecting %d part(s)", src.Filename, size, audio.NumParts(size, p.opts.MaxPartSize))

	// validated -> split
	parts, err := p.splitter.Split(ctx, audio.Source{Path: srcPath, Format: format, Size: size}, dir)
	if err != nil {
		return nil, t.fail(ctx, splitCategory(ctx, err), fmt.Errorf("split: %w", err))
	}
	t.advance(ctx, StateSplit)

	// We no longer need the original once it is cut.
	if err := os.Remove(srcPath); err != nil {
		p.logger.Warn(ctx, "Failed to remove source copy %s: %v", srcPath, err)
	}

	// split -> transcribing -> transcribed
	t.advance(ctx, StateTranscribing)
	transcript, err := p.accumulator.TranscribeAll(ctx, parts)
	if err != nil {
		return nil, t.fail(ctx, transcribeCategory(ctx, err), fmt.Errorf("transcribe: %w", err))
	}
	t.advance(ctx, StateTranscribed)

	// transcribed -> summarizing -> completed
	t.advance(ctx, StateSummarizing)
	minutes, err := p.summarizer.Compose(ctx, transcript)
	if err != nil {
		return nil, t.fail(ctx, CategoryService, fmt.Errorf("summarize: %w", err))
	}
	t.advance(ctx, StateCompleted)

	elapsed := time.Since(startTime)
	p.logger.Info(ctx, "Run completed: %d part(s), %d transcript characters, %s", len(parts), len(transcript), elapsed.Round(time.Millisecond))

	return &Result{
		RunID:              runID,
		Filename:           src.Filename,
		Minutes:            minutes,
		Transcript:         transcript,
		Parts:              parts,
		TranscriptionModel: p.opts.TranscriptionModel,
		SummarizationModel: p.opts.SummarizationModel,
		Elapsed:            elapsed,
	}, nil
}

// categorize returns CategoryService for a cancelled run and fallback
// otherwise.
func categorize(ctx context.Context, fallback Category) Category {
	if ctx.Err() != nil {
		return CategoryService
	}
	return fallback
}

func splitCategory(ctx context.Context, err error) Category {
	switch {
	case ctx.Err() != nil:
		return CategoryService
	case errors.Is(err, audio.ErrDecode), errors.Is(err, audio.ErrEmpty), errors.Is(err, audio.ErrPartTooLarge):
		return CategoryDecode
	default:
		return CategoryResource
	}
}

func transcribeCategory(ctx context.Context, err error) Category {
	if errors.Is(err, transcriber.ErrTranscription) {
		return CategoryService
	}
	return categorize(ctx, CategoryResource)
}
