package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/audio"
)

// TranscribeAll transcribes every part and joins the texts in index order.
// Up to Concurrency calls are in flight at once; the first failure cancels
// the rest and no partial transcript is returned.
func (a *implAccumulator) TranscribeAll(ctx context.Context, parts []audio.Part) (string, error) {
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: no audio parts", ErrTranscription)
	}
	for i, part := range parts {
		if part.Index != i {
			return "", fmt.Errorf("part at position %d has index %d", i, part.Index)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	texts := make([]string, len(parts))
	slots := make(chan struct{}, a.opts.Concurrency)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

dispatch:
	for _, part := range parts {
		select {
		case slots <- struct{}{}:
		case <-ctx.Done():
			fail(fmt.Errorf("%w: %w", ErrTranscription, ctx.Err()))
			break dispatch
		}

		wg.Add(1)
		go func(part audio.Part) {
			defer wg.Done()
			defer func() { <-slots }()

			text, err := a.transcribePart(ctx, part, len(parts))
			if err != nil {
				fail(fmt.Errorf("part %d: %w", part.Index, err))
				return
			}
			texts[part.Index] = text
		}(part)
	}

	wg.Wait()

	if firstErr != nil {
		return "", firstErr
	}

	transcript := strings.Join(texts, a.opts.Separator)
	a.logger.Info(ctx, "Transcribed %d part(s), %d characters", len(parts), len(transcript))
	return transcript, nil
}

func (a *implAccumulator) transcribePart(ctx context.Context, part audio.Part, total int) (string, error) {
	data, err := os.ReadFile(part.Path)
	if err != nil {
		return "", fmt.Errorf("read part: %w", err)
	}

	a.logger.Info(ctx, "[%d/%d] Transcribing %s (%d bytes)", part.Index+1, total, filepath.Base(part.Path), len(data))
	started := time.Now()

	text, err := a.client.Transcribe(ctx, Request{
		Audio:    data,
		Filename: filepath.Base(part.Path),
		Model:    a.opts.Model,
		Language: a.opts.Language,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranscription, err)
	}

	a.logger.Debug(ctx, "[%d/%d] Done in %s", part.Index+1, total, time.Since(started).Round(time.Millisecond))
	return text, nil
}
