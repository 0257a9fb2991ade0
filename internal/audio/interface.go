package audio

import (
	"context"
	"time"
)

// Splitter cuts a source recording into re-encoded parts small enough for
// the transcription service.
type Splitter interface {
	// Split writes the parts into dir and returns them in index order.
	// The caller owns dir and removes it.
	Split(ctx context.Context, src Source, dir string) ([]Part, error)
}

// Prober reports the playing time of an audio file.
type Prober interface {
	Probe(ctx context.Context, path, format string) (time.Duration, error)
}
