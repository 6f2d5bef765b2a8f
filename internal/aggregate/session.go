// Package aggregate - session.go owns the submission lifecycle:
// last-submission-wins, never first-response-wins.
package aggregate

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/trustguard/internal/types"
)

// ErrSuperseded is returned for a submission whose result arrived after a
// newer submission was started. The stale result is discarded unseen.
var ErrSuperseded = errors.New("submission superseded by a newer one")

// Session serializes submissions against one displayed result. Starting a new
// submission cancels the in-flight one; if the stale call still resolves, its
// result is dropped. On failure the previously displayed result is retained.
type Session struct {
	pipeline *Pipeline

	mu         sync.Mutex
	generation uuid.UUID
	cancel     context.CancelFunc
	result     *types.AggregateResult
}

// NewSession creates a session over the given pipeline.
func NewSession(pipeline *Pipeline) *Session {
	return &Session{pipeline: pipeline}
}

// Submit runs one submission. It blocks until the pipeline resolves, then
// publishes the result only if no newer submission has been started since.
func (s *Session) Submit(ctx context.Context, req *types.AnalysisRequest) (*types.AggregateResult, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	generation := uuid.New()

	s.mu.Lock()
	s.generation = generation
	if s.cancel != nil {
		// Supersede the in-flight submission.
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	result, err := s.pipeline.Run(runCtx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		return nil, ErrSuperseded
	}
	if err != nil {
		// The prior result, if any, stays displayed.
		return nil, err
	}

	s.result = result
	return result, nil
}

// Result returns the most recently published result, or nil before the first
// successful submission.
func (s *Session) Result() *types.AggregateResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}
