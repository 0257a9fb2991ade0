package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Split probes the source, works out how many parts keep each one under
// MaxPartSize and re-encodes every time slice with ffmpeg inside dir.
func (s *implSplitter) Split(ctx context.Context, src Source, dir string) ([]Part, error) {
	if src.Size <= 0 {
		return nil, fmt.Errorf("%w: %s has no bytes", ErrEmpty, src.Path)
	}

	srcPath, err := filepath.Abs(src.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve source path: %w", err)
	}

	total, err := s.prober.Probe(ctx, srcPath, src.Format)
	if err != nil {
		return nil, err
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: %s has no playing time", ErrEmpty, src.Path)
	}

	numParts := NumParts(src.Size, s.opts.MaxPartSize)
	bounds := Boundaries(total, numParts)

	s.logger.Info(ctx, "Splitting %s (%d bytes, %s) into %d part(s) of ~%s",
		filepath.Base(src.Path), src.Size, total, numParts, total/time.Duration(numParts))

	parts := make([]Part, 0, numParts)
	for i := 0; i < numParts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := bounds[i]
		duration := bounds[i+1] - start
		if duration <= 0 {
			return nil, fmt.Errorf("%w: %s is too short for %d parts", ErrDecode, total, numParts)
		}
		last := i == numParts-1

		name := fmt.Sprintf("part-%03d.%s", i, s.opts.PartFormat)
		if err := s.encodePart(ctx, dir, srcPath, name, start, duration, last); err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat part %d: %w", i, err)
		}
		if info.Size() > s.opts.MaxPartSize {
			return nil, fmt.Errorf("%w: part %d is %d bytes (limit %d)", ErrPartTooLarge, i, info.Size(), s.opts.MaxPartSize)
		}

		s.logger.Debug(ctx, "Part %d: %s +%s, %d bytes", i, start, duration, info.Size())
		parts = append(parts, Part{
			Index:    i,
			Path:     path,
			Size:     info.Size(),
			Start:    start,
			Duration: duration,
		})
	}

	return parts, nil
}

// encodePart re-encodes [start, start+duration) of srcPath into dir/name.
// The last part is left open-ended so nothing after the final boundary is lost.
func (s *implSplitter) encodePart(ctx context.Context, dir, srcPath, name string, start, duration time.Duration, last bool) error {
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-ss", formatSeconds(start),
		"-i", srcPath,
	}
	if !last {
		args = append(args, "-t", formatSeconds(duration))
	}
	args = append(args,
		"-vn",
		"-map_metadata", "-1",
		"-c:a", s.opts.AudioCodec,
		"-b:a", s.opts.AudioBitrate,
		name,
	)

	if _, err := s.executor.ExecuteInDir(ctx, dir, s.opts.FFmpegPath, args...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: ffmpeg encode: %v", ErrDecode, err)
	}
	return nil
}

// NumParts returns ceil(size / maxPartSize).
func NumParts(size, maxPartSize int64) int {
	if size <= 0 || maxPartSize <= 0 {
		return 0
	}
	return int((size + maxPartSize - 1) / maxPartSize)
}

// Boundaries splits total into n equal slices on a millisecond grid.
// It returns n+1 offsets; the first is 0 and the last is exactly total, so
// consecutive slices neither overlap nor leave gaps.
func Boundaries(total time.Duration, n int) []time.Duration {
	if n <= 0 {
		return nil
	}

	ms := total.Milliseconds()
	bounds := make([]time.Duration, n+1)
	for i := 1; i < n; i++ {
		rounded := (2*int64(i)*ms + int64(n)) / (2 * int64(n))
		bounds[i] = time.Duration(rounded) * time.Millisecond
	}
	bounds[n] = total
	return bounds
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
