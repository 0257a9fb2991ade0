package pipeline

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// OpenFile returns a Source reading the recording at path. The caller
// closes the returned Closer after Run.
func OpenFile(path string) (Source, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrMissingFile, path)
			return Source{}, nil, &Error{Category: CategoryInput, State: StateReceived, Err: err}
		}
		return Source{}, nil, &Error{Category: CategoryResource, State: StateReceived, Err: fmt.Errorf("open %s: %w", path, err)}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return Source{}, nil, &Error{Category: CategoryResource, State: StateReceived, Err: fmt.Errorf("stat %s: %w", path, err)}
	}
	if info.IsDir() {
		f.Close()
		return Source{}, nil, &Error{Category: CategoryInput, State: StateReceived, Err: fmt.Errorf("%w: %s is a directory", ErrMissingFile, path)}
	}

	return Source{Filename: filepath.Base(path), Body: f, Size: info.Size()}, f, nil
}
