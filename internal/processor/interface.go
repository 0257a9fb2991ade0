package processor

import "context"

// Processor turns one recording on disk into minutes reports.
type Processor interface {
	// Process runs the pipeline on audioPath, writes the reports and
	// archives the recording. It returns the report paths.
	Process(ctx context.Context, audioPath string) ([]string, error)
}
