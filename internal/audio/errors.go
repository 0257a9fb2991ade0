package audio

import "errors"

var (
	// ErrDecode means the bytes could not be read as the declared format
	// or could not be re-encoded.
	ErrDecode = errors.New("audio decode failed")
	// ErrEmpty means the source has no bytes or no playing time.
	ErrEmpty = errors.New("audio is empty")
	// ErrPartTooLarge means a re-encoded part exceeded the part ceiling.
	ErrPartTooLarge = errors.New("audio part exceeds size limit")
)
