package summarizer

import "errors"

// ErrSummarization marks a failed or empty text-generation call.
var ErrSummarization = errors.New("summarization failed")
