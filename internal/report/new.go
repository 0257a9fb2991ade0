package report

import (
	"fmt"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

const (
	FormatJSON     = "json"
	FormatMarkdown = "md"
	FormatDOCX     = "docx"
)

// Options selects what a Writer produces.
type Options struct {
	Formats           []string
	IncludeTranscript bool
}

type implWriter struct {
	opts   Options
	logger logger.Logger
}

// New creates a Writer. An empty Formats list means every format.
func New(opts Options, log logger.Logger) (Writer, error) {
	if len(opts.Formats) == 0 {
		opts.Formats = []string{FormatJSON, FormatMarkdown, FormatDOCX}
	}
	for _, f := range opts.Formats {
		switch f {
		case FormatJSON, FormatMarkdown, FormatDOCX:
		default:
			return nil, fmt.Errorf("report: unknown format %q", f)
		}
	}
	return &implWriter{opts: opts, logger: log}, nil
}
