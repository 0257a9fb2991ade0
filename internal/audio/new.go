package audio

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

// Options configures part encoding.
type Options struct {
	MaxPartSize  int64
	FFmpegPath   string
	AudioCodec   string
	AudioBitrate string
	PartFormat   string
}

type implSplitter struct {
	opts     Options
	executor executor.Executor
	prober   Prober
	logger   logger.Logger
}

// New creates a Splitter that encodes parts with ffmpeg.
func New(opts Options, exec executor.Executor, prober Prober, log logger.Logger) Splitter {
	if opts.FFmpegPath == "" {
		opts.FFmpegPath = "ffmpeg"
	}
	if opts.AudioCodec == "" {
		opts.AudioCodec = "libmp3lame"
	}
	if opts.AudioBitrate == "" {
		opts.AudioBitrate = "128k"
	}
	if opts.PartFormat == "" {
		opts.PartFormat = "mp3"
	}
	return &implSplitter{
		opts:     opts,
		executor: exec,
		prober:   prober,
		logger:   log,
	}
}

type implProber struct {
	probePath string
	executor  executor.Executor
	logger    logger.Logger
}

// NewProber creates a Prober that decodes wav, mp3 and flac in process and
// asks ffprobe about everything else.
func NewProber(probePath string, exec executor.Executor, log logger.Logger) Prober {
	if probePath == "" {
		probePath = "ffprobe"
	}
	return &implProber{
		probePath: probePath,
		executor:  exec,
		logger:    log,
	}
}
