package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

const mib = 1024 * 1024

// fakeExecutor pretends to be ffmpeg: it writes partSize bytes to the
// output file named by the last argument.
type fakeExecutor struct {
	mu       sync.Mutex
	calls    [][]string
	partSize int64
	err      error
	output   string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return "", f.err
	}
	out := filepath.Join(dir, args[len(args)-1])
	if err := os.WriteFile(out, make([]byte, f.partSize), 0644); err != nil {
		return "", err
	}
	return "", nil
}

type fakeProber struct {
	duration time.Duration
	err      error
}

func (f fakeProber) Probe(ctx context.Context, path, format string) (time.Duration, error) {
	return f.duration, f.err
}

func testLogger() logger.Logger {
	return logger.New("error", logger.FormatText)
}

func argValue(args []string, flag string) (string, bool) {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1], true
		}
	}
	return "", false
}

func TestNumParts(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want int
	}{
		{"empty", 0, 0},
		{"one byte", 1, 1},
		{"10 MiB", 10 * mib, 1},
		{"exactly 25 MiB", 25 * mib, 1},
		{"25 MiB plus one byte", 25*mib + 1, 2},
		{"60 MiB", 60 * mib, 3},
		{"125 MiB", 125 * mib, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumParts(tt.size, 25*mib); got != tt.want {
				t.Errorf("NumParts(%d) = %d, want %d", tt.size, got, tt.want)
			}
		})
	}
}

func TestBoundariesPartitionDuration(t *testing.T) {
	tests := []struct {
		total time.Duration
		n     int
	}{
		{120 * time.Second, 3},
		{30 * time.Second, 1},
		{100*time.Second + 333*time.Millisecond + 7, 3},
		{7 * time.Second, 5},
		{time.Hour + 1234*time.Microsecond, 4},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.total, tt.n), func(t *testing.T) {
			b := Boundaries(tt.total, tt.n)
			if len(b) != tt.n+1 {
				t.Fatalf("len = %d, want %d", len(b), tt.n+1)
			}
			if b[0] != 0 {
				t.Errorf("first boundary = %s, want 0", b[0])
			}
			if b[tt.n] != tt.total {
				t.Errorf("last boundary = %s, want %s", b[tt.n], tt.total)
			}
			var sum time.Duration
			for i := 0; i < tt.n; i++ {
				if b[i+1] <= b[i] {
					t.Errorf("boundary %d (%s) not after %d (%s)", i+1, b[i+1], i, b[i])
				}
				sum += b[i+1] - b[i]
			}
			if sum != tt.total {
				t.Errorf("sum of slices = %s, want %s", sum, tt.total)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name          string
		size          int64
		total         time.Duration
		wantParts     int
		wantDurations []time.Duration
	}{
		{
			name:          "60 MiB over 120s gives three 40s parts",
			size:          60 * mib,
			total:         120 * time.Second,
			wantParts:     3,
			wantDurations: []time.Duration{40 * time.Second, 40 * time.Second, 40 * time.Second},
		},
		{
			name:          "10 MiB over 30s gives one part",
			size:          10 * mib,
			total:         30 * time.Second,
			wantParts:     1,
			wantDurations: []time.Duration{30 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			exec := &fakeExecutor{partSize: 1024}
			s := New(Options{MaxPartSize: 25 * mib}, exec, fakeProber{duration: tt.total}, testLogger())

			parts, err := s.Split(context.Background(), Source{Path: "meeting.wav", Format: "wav", Size: tt.size}, dir)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if len(parts) != tt.wantParts {
				t.Fatalf("len(parts) = %d, want %d", len(parts), tt.wantParts)
			}
			if len(exec.calls) != tt.wantParts {
				t.Errorf("ffmpeg calls = %d, want %d", len(exec.calls), tt.wantParts)
			}

			var next time.Duration
			for i, p := range parts {
				if p.Index != i {
					t.Errorf("part %d has index %d", i, p.Index)
				}
				if p.Start != next {
					t.Errorf("part %d starts at %s, want %s", i, p.Start, next)
				}
				if p.Duration != tt.wantDurations[i] {
					t.Errorf("part %d duration = %s, want %s", i, p.Duration, tt.wantDurations[i])
				}
				if p.Size != 1024 {
					t.Errorf("part %d size = %d, want 1024", i, p.Size)
				}
				if filepath.Dir(p.Path) != dir {
					t.Errorf("part %d written outside run dir: %s", i, p.Path)
				}
				next = p.End()

				args := exec.calls[i]
				if ss, _ := argValue(args, "-ss"); ss != formatSeconds(p.Start) {
					t.Errorf("part %d -ss = %q, want %q", i, ss, formatSeconds(p.Start))
				}
				length, hasLength := argValue(args, "-t")
				last := i == len(parts)-1
				if last && hasLength {
					t.Errorf("last part should run to end of stream, got -t %s", length)
				}
				if !last && length != formatSeconds(p.Duration) {
					t.Errorf("part %d -t = %q, want %q", i, length, formatSeconds(p.Duration))
				}
				if in, _ := argValue(args, "-i"); !filepath.IsAbs(in) {
					t.Errorf("input path %q is not absolute", in)
				}
			}
			if next != tt.total {
				t.Errorf("parts cover %s, want %s", next, tt.total)
			}
		})
	}
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		name    string
		size    int64
		prober  fakeProber
		exec    *fakeExecutor
		wantErr error
	}{
		{
			name:    "zero size",
			size:    0,
			prober:  fakeProber{duration: time.Second},
			exec:    &fakeExecutor{partSize: 1},
			wantErr: ErrEmpty,
		},
		{
			name:    "zero duration",
			size:    mib,
			prober:  fakeProber{duration: 0},
			exec:    &fakeExecutor{partSize: 1},
			wantErr: ErrEmpty,
		},
		{
			name:    "undecodable source",
			size:    mib,
			prober:  fakeProber{err: fmt.Errorf("%w: garbage", ErrDecode)},
			exec:    &fakeExecutor{partSize: 1},
			wantErr: ErrDecode,
		},
		{
			name:    "ffmpeg failure",
			size:    mib,
			prober:  fakeProber{duration: 10 * time.Second},
			exec:    &fakeExecutor{err: errors.New("exit status 1")},
			wantErr: ErrDecode,
		},
		{
			name:    "re-encoded part too large",
			size:    mib,
			prober:  fakeProber{duration: 10 * time.Second},
			exec:    &fakeExecutor{partSize: 26 * mib},
			wantErr: ErrPartTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{MaxPartSize: 25 * mib}, tt.exec, tt.prober, testLogger())
			_, err := s.Split(context.Background(), Source{Path: "a.mp3", Format: "mp3", Size: tt.size}, t.TempDir())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Split() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(Options{MaxPartSize: 25 * mib}, &fakeExecutor{partSize: 1}, fakeProber{duration: time.Minute}, testLogger())
	_, err := s.Split(ctx, Source{Path: "a.mp3", Format: "mp3", Size: 60 * mib}, t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Split() error = %v, want context.Canceled", err)
	}
}

func TestSplitUsesConfiguredEncoding(t *testing.T) {
	exec := &fakeExecutor{partSize: 1}
	s := New(Options{
		MaxPartSize:  25 * mib,
		FFmpegPath:   "/opt/ffmpeg",
		AudioCodec:   "aac",
		AudioBitrate: "64k",
		PartFormat:   "m4a",
	}, exec, fakeProber{duration: time.Minute}, testLogger())

	parts, err := s.Split(context.Background(), Source{Path: "a.flac", Format: "flac", Size: mib}, t.TempDir())
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	args := exec.calls[0]
	if args[0] != "/opt/ffmpeg" {
		t.Errorf("binary = %q, want /opt/ffmpeg", args[0])
	}
	if codec, _ := argValue(args, "-c:a"); codec != "aac" {
		t.Errorf("codec = %q, want aac", codec)
	}
	if rate, _ := argValue(args, "-b:a"); rate != "64k" {
		t.Errorf("bitrate = %q, want 64k", rate)
	}
	if !strings.HasSuffix(parts[0].Path, "part-000.m4a") {
		t.Errorf("part path = %q", parts[0].Path)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		filename  string
		format    string
		supported bool
	}{
		{"meeting.mp3", "mp3", true},
		{"Meeting.WAV", "wav", true},
		{"a.b.flac", "flac", true},
		{"call.m4a", "m4a", true},
		{"notes.txt", "txt", false},
		{"photo.jpg", "jpg", false},
		{"noext", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := FormatOf(tt.filename); got != tt.format {
				t.Errorf("FormatOf() = %q, want %q", got, tt.format)
			}
			if got := IsAudioFile(tt.filename); got != tt.supported {
				t.Errorf("IsAudioFile() = %v, want %v", got, tt.supported)
			}
		})
	}
}
