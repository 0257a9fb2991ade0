package summarizer

import "context"

// Request is one text-generation call.
type Request struct {
	Model       string
	System      string
	User        string
	Temperature float32
}

// Generator is a text-generation backend. Implementations must be safe for
// concurrent use.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Summarizer derives meeting minutes from a transcript.
type Summarizer interface {
	// Extract runs one instruction against the transcript and returns the
	// generated text unchanged.
	Extract(ctx context.Context, transcript, instruction string) (string, error)
	// Compose runs all four facets and returns minutes only when every
	// facet succeeded.
	Compose(ctx context.Context, transcript string) (*Minutes, error)
}
