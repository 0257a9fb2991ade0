package audio

import (
	"encoding/json"
	"time"
)

// Source is an audio file already written to run-local storage.
type Source struct {
	Path   string
	Format string
	Size   int64
}

// Part is one contiguous, independently encoded slice of a Source.
type Part struct {
	Index    int           `json:"index"`
	Path     string        `json:"-"`
	Size     int64         `json:"size"`
	Start    time.Duration `json:"-"`
	Duration time.Duration `json:"-"`
}

// MarshalJSON writes the offsets as whole milliseconds.
func (p Part) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index      int   `json:"index"`
		Size       int64 `json:"size"`
		StartMS    int64 `json:"start_ms"`
		DurationMS int64 `json:"duration_ms"`
	}{
		Index:      p.Index,
		Size:       p.Size,
		StartMS:    p.Start.Milliseconds(),
		DurationMS: p.Duration.Milliseconds(),
	})
}

// End returns the offset where the part stops in the source timeline.
func (p Part) End() time.Duration {
	return p.Start + p.Duration
}
