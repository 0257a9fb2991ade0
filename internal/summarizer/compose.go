package summarizer

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Compose runs every facet concurrently over the same transcript. The first
// failure cancels the others.
func (s *implSummarizer) Compose(ctx context.Context, transcript string) (*Minutes, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.logger.Info(ctx, "Summarizing transcript starting with [%s...]", preview(transcript, 50))
	started := time.Now()

	results := make([]string, len(s.facets))

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for i, facet := range s.facets {
		wg.Add(1)
		go func(i int, facet Facet) {
			defer wg.Done()

			text, err := s.Extract(ctx, transcript, facet.Instruction)
			if err != nil {
				once.Do(func() {
					firstErr = fmt.Errorf("%s: %w", facet.Name, err)
					cancel()
				})
				return
			}
			results[i] = text
			s.logger.Debug(ctx, "Facet %s done (%d characters)", facet.Name, len(text))
		}(i, facet)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	minutes := &Minutes{}
	for i, facet := range s.facets {
		facet.set(minutes, results[i])
	}

	s.logger.Info(ctx, "Summaries ready in %s", time.Since(started).Round(time.Millisecond))
	return minutes, nil
}

// preview returns at most n runes of text.
func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
