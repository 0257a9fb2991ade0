package transcriber

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

// Options configures an Accumulator.
type Options struct {
	Model       string
	Language    string
	Concurrency int
	// Separator goes between consecutive part transcripts.
	Separator string
}

type implAccumulator struct {
	client Client
	opts   Options
	logger logger.Logger
}

// New creates an Accumulator that calls client for every part.
func New(client Client, opts Options, log logger.Logger) Accumulator {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &implAccumulator{
		client: client,
		opts:   opts,
		logger: log,
	}
}
