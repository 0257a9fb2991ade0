package processor

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
	"github.com/nguyentantai21042004/minutes-flow/internal/report"
)

type implProcessor struct {
	paths    config.PathsConfig
	pipeline pipeline.Pipeline
	reports  report.Writer
	logger   logger.Logger
}

// New creates a new Processor instance
func New(paths config.PathsConfig, p pipeline.Pipeline, reports report.Writer, log logger.Logger) Processor {
	return &implProcessor{
		paths:    paths,
		pipeline: p,
		reports:  reports,
		logger:   log,
	}
}
