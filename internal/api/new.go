package api

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
)

// multipartSlack is room for multipart headers and boundaries around the
// file itself.
const multipartSlack = 1 << 20

type implHandler struct {
	pipeline     pipeline.Pipeline
	maxTotalSize int64
	logger       logger.Logger
}

// New creates a Handler that runs every upload through p. maxTotalSize
// must match the pipeline's own limit.
func New(p pipeline.Pipeline, maxTotalSize int64, log logger.Logger) Handler {
	return &implHandler{
		pipeline:     p,
		maxTotalSize: maxTotalSize,
		logger:       log,
	}
}
