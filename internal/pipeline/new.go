package pipeline

import (
	"errors"

	"github.com/nguyentantai21042004/minutes-flow/internal/audio"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
)

// Options holds the limits and names a run needs.
type Options struct {
	TranscriptionModel string
	SummarizationModel string
	MaxTotalSize       int64
	MaxPartSize        int64
	// TempDir is the parent of every run workspace.
	TempDir string
}

type implPipeline struct {
	opts        Options
	splitter    audio.Splitter
	accumulator transcriber.Accumulator
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New wires the three stages into a Pipeline.
func New(opts Options, splitter audio.Splitter, acc transcriber.Accumulator, sum summarizer.Summarizer, log logger.Logger) (Pipeline, error) {
	if opts.MaxTotalSize <= 0 || opts.MaxPartSize <= 0 {
		return nil, errors.New("pipeline: size limits must be positive")
	}
	if opts.MaxPartSize > opts.MaxTotalSize {
		return nil, errors.New("pipeline: part limit exceeds total limit")
	}
	return &implPipeline{
		opts:        opts,
		splitter:    splitter,
		accumulator: acc,
		summarizer:  sum,
		logger:      log,
	}, nil
}
