package report

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
)

// Writer saves the minutes of a completed run.
type Writer interface {
	// Write renders res in every configured format into dir and returns
	// the written paths.
	Write(ctx context.Context, res *pipeline.Result, dir string) ([]string, error)
}
