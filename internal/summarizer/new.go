package summarizer

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type implSummarizer struct {
	generator Generator
	model     string
	facets    []Facet
	logger    logger.Logger
}

// New creates a Summarizer that sends every facet to generator using model.
func New(generator Generator, model string, log logger.Logger) Summarizer {
	return &implSummarizer{
		generator: generator,
		model:     model,
		facets:    Facets,
		logger:    log,
	}
}
