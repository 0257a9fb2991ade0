package pipeline

import (
	"errors"
	"fmt"
)

// Category groups failures by who has to act on them.
type Category string

const (
	// CategoryInput is a bad request: unsupported format, too large, missing.
	CategoryInput Category = "input"
	// CategoryDecode means the bytes could not be read as audio.
	CategoryDecode Category = "decode"
	// CategoryService is a failed or cancelled external call. Retryable.
	CategoryService Category = "service"
	// CategoryResource is a local storage or process failure.
	CategoryResource Category = "resource"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrTooLarge          = errors.New("audio file too large")
	ErrMissingFile       = errors.New("no audio file provided")
)

// Error is returned by Run for every failed run.
type Error struct {
	Category Category
	// State is the last state the run reached before failing.
	State State
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error after %s: %v", e.Category, e.State, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// temporary is implemented by provider errors that know whether the
// service may accept the same request later.
type temporary interface {
	Temporary() bool
}

// Retryable reports whether submitting the same audio again may succeed.
// A service error whose cause says otherwise, such as a rejected API key,
// is not retryable.
func (e *Error) Retryable() bool {
	if e.Category != CategoryService {
		return false
	}
	var t temporary
	if errors.As(e.Err, &t) {
		return t.Temporary()
	}
	return true
}

// CategoryOf returns the category of a pipeline error, or CategoryResource
// for anything else.
func CategoryOf(err error) Category {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Category
	}
	return CategoryResource
}
