package transcriber

import "errors"

// ErrTranscription marks a failed speech-to-text call.
var ErrTranscription = errors.New("transcription failed")
