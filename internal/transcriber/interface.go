package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/audio"
)

// Request is one speech-to-text call for a single audio part.
type Request struct {
	Audio    []byte
	Filename string
	Model    string
	Language string
}

// Client is a speech-to-text backend. Implementations must be safe for
// concurrent use.
type Client interface {
	Transcribe(ctx context.Context, req Request) (string, error)
}

// Accumulator turns ordered parts into one transcript.
type Accumulator interface {
	TranscribeAll(ctx context.Context, parts []audio.Part) (string, error)
}
