// Package sink holds the destinations a completed contact form is handed to.
// None of them deliver mail or persist anything; they are the seam where a
// real backend integration would plug in.
package sink

import (
	"context"
	"log/slog"
	"sync"

	"github.com/givers/site/internal/model"
	"github.com/givers/site/internal/service"
	"github.com/google/uuid"
)

// LogSink writes each submission to a structured logger.
type LogSink struct {
	logger *slog.Logger
	newID  func() string
}

// NewLogSink creates a LogSink. A nil logger uses slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger, newID: uuid.NewString}
}

var _ service.SubmissionSink = (*LogSink)(nil)

func (s *LogSink) Submit(ctx context.Context, state model.FormState) {
	s.logger.InfoContext(ctx, "contact form submitted",
		"submission_id", s.newID(),
		slog.Group("form",
			"name", state.Name,
			"email", state.Email,
			"subject", state.Subject,
			"message", state.Message,
		),
	)
}

// Multi fans a submission out to every sink in order.
type Multi []service.SubmissionSink

func (m Multi) Submit(ctx context.Context, state model.FormState) {
	for _, s := range m {
		s.Submit(ctx, state)
	}
}

// Recorder keeps every submission in memory.
type Recorder struct {
	mu    sync.Mutex
	items []model.FormState
}

func (r *Recorder) Submit(_ context.Context, state model.FormState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, state)
}

// Submissions returns a copy of what has been recorded so far.
func (r *Recorder) Submissions() []model.FormState {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.FormState, len(r.items))
	copy(out, r.items)
	return out
}
