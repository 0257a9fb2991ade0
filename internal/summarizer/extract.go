package summarizer

import (
	"context"
	"fmt"
	"strings"
)

// Extract sends instruction as the system directive and the transcript as
// user content at temperature zero.
func (s *implSummarizer) Extract(ctx context.Context, transcript, instruction string) (string, error) {
	text, err := s.generator.Generate(ctx, Request{
		Model:       s.model,
		System:      instruction,
		User:        transcript,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSummarization, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response", ErrSummarization)
	}
	return text, nil
}
