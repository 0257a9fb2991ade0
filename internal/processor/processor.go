package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
)

// Process orchestrates one file job: run, report, archive.
func (p *implProcessor) Process(ctx context.Context, audioPath string) ([]string, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting minutes for: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	src, closer, err := pipeline.OpenFile(audioPath)
	if err != nil {
		return nil, err
	}

	res, err := p.pipeline.Run(ctx, src)
	closer.Close()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", audioPath, err)
	}

	paths, err := p.reports.Write(ctx, res, p.paths.Output)
	if err != nil {
		return paths, fmt.Errorf("write reports: %w", err)
	}

	if err := p.moveToArchived(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Minutes completed for run %s", res.RunID)
	for _, path := range paths {
		p.logger.Info(ctx, "Report: %s", path)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return paths, nil
}
