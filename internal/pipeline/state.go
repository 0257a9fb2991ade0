package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

// State is a step of a run's lifecycle.
type State string

const (
	StateReceived     State = "received"
	StateValidated    State = "validated"
	StateSplit        State = "split"
	StateTranscribing State = "transcribing"
	StateTranscribed  State = "transcribed"
	StateSummarizing  State = "summarizing"
	StateCompleted    State = "completed"
	StateFailed       State = "failed"
)

// tracker records one run's state and logs every transition.
type tracker struct {
	state  State
	logger logger.Logger
}

func newTracker(ctx context.Context, log logger.Logger) *tracker {
	log.Debug(ctx, "State -> %s", StateReceived)
	return &tracker{state: StateReceived, logger: log}
}

func (t *tracker) advance(ctx context.Context, to State) {
	t.logger.Info(ctx, "State %s -> %s", t.state, to)
	t.state = to
}

// fail moves the run to failed and wraps err with its category.
func (t *tracker) fail(ctx context.Context, category Category, err error) error {
	e := &Error{Category: category, State: t.state, Err: err}
	t.logger.Error(ctx, "State %s -> %s: %v", t.state, StateFailed, e)
	t.state = StateFailed
	return e
}
