package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

var errNoDecoder = errors.New("no in-process decoder")

// Probe returns the duration of the file at path.
// wav, mp3 and flac are decoded in process; on failure, or for other
// containers, ffprobe has the final word.
func (p *implProber) Probe(ctx context.Context, path, format string) (time.Duration, error) {
	d, err := decodeDuration(path, format)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, errNoDecoder) {
		p.logger.Debug(ctx, "In-process decode of %s failed, falling back to ffprobe: %v", path, err)
	}

	d, err = p.ffprobe(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, fmt.Errorf("%w: %s: %v", ErrDecode, format, err)
	}
	return d, nil
}

func decodeDuration(path, format string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		sf     beep.Format
	)
	switch format {
	case "wav":
		stream, sf, err = wav.Decode(f)
	case "mp3":
		stream, sf, err = mp3.Decode(f)
	case "flac":
		stream, sf, err = flac.Decode(f)
	default:
		f.Close()
		return 0, errNoDecoder
	}
	if err != nil {
		f.Close()
		return 0, err
	}
	defer stream.Close()

	n := stream.Len()
	if n <= 0 {
		return 0, fmt.Errorf("stream has no samples")
	}
	return sf.SampleRate.D(n), nil
}

func (p *implProber) ffprobe(ctx context.Context, path string) (time.Duration, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := p.executor.Execute(ctx, p.probePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	return parseSeconds(out)
}

func parseSeconds(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	if secs <= 0 {
		return 0, fmt.Errorf("non-positive duration %q", s)
	}
	return time.Duration(secs * float64(time.Second)), nil
}
