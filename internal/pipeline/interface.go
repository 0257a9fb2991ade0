package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/audio"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
)

// Source is one submitted recording.
type Source struct {
	Filename string
	Body     io.Reader
	// Size is the declared byte count, or <= 0 when unknown.
	Size int64
}

// Result is the outcome of a completed run.
type Result struct {
	RunID              string              `json:"run_id"`
	Filename           string              `json:"filename"`
	Minutes            *summarizer.Minutes `json:"minutes"`
	Transcript         string              `json:"transcript"`
	Parts              []audio.Part        `json:"parts"`
	TranscriptionModel string              `json:"transcription_model"`
	SummarizationModel string              `json:"summarization_model"`
	Elapsed            time.Duration       `json:"-"`
}

// MarshalJSON adds the run time as elapsed_ms.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	return json.Marshal(struct {
		plain
		ElapsedMS int64 `json:"elapsed_ms"`
	}{
		plain:     plain(r),
		ElapsedMS: r.Elapsed.Milliseconds(),
	})
}

// Pipeline turns one recording into meeting minutes.
type Pipeline interface {
	// Run validates, splits, transcribes and summarizes src. Any failure
	// is an *Error; nothing partial is returned.
	Run(ctx context.Context, src Source) (*Result, error)
}
