package export

import (
	"fmt"
	"sync"
	"time"
)

// StatusBoard tracks per-format state for running jobs in memory. Progress is
// monotonic: updates never move a format's percentage backwards.
type StatusBoard struct {
	mu   sync.RWMutex
	jobs map[string]*jobStates
}

type jobStates struct {
	order  []Format
	states map[Format]FormatState
}

// NewStatusBoard creates an empty board.
func NewStatusBoard() *StatusBoard {
	return &StatusBoard{jobs: make(map[string]*jobStates)}
}

// Begin registers a job with all requested formats idle at zero progress.
func (b *StatusBoard) Begin(jobID string, formats []Format) {
	states := &jobStates{states: make(map[Format]FormatState, len(formats))}
	for _, f := range formats {
		if _, ok := states.states[f]; ok {
			continue
		}
		states.order = append(states.order, f)
		states.states[f] = FormatState{Format: f, Status: StatusIdle}
	}

	b.mu.Lock()
	b.jobs[jobID] = states
	b.mu.Unlock()
}

// SetStatus transitions one format's status, stamping start and finish times.
func (b *StatusBoard) SetStatus(jobID string, format Format, status FormatStatus) error {
	return b.update(jobID, format, func(s *FormatState) {
		s.Status = status
		if status == StatusGenerating && s.StartedAt.IsZero() {
			s.StartedAt = time.Now()
		}
		if status.Terminal() && s.FinishedAt.IsZero() {
			s.FinishedAt = time.Now()
		}
	})
}

// SetProgress raises one format's progress. Values are clamped to 0-100 and
// regressions are dropped.
func (b *StatusBoard) SetProgress(jobID string, format Format, progress int) error {
	if progress > 100 {
		progress = 100
	}
	return b.update(jobID, format, func(s *FormatState) {
		if progress > s.Progress {
			s.Progress = progress
		}
	})
}

// SetError moves one format into the error terminal state.
func (b *StatusBoard) SetError(jobID string, format Format, err error) error {
	return b.update(jobID, format, func(s *FormatState) {
		s.Status = StatusError
		s.Err = err
		if s.FinishedAt.IsZero() {
			s.FinishedAt = time.Now()
		}
	})
}

// State returns one format's state.
func (b *StatusBoard) State(jobID string, format Format) (FormatState, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	job, ok := b.jobs[jobID]
	if !ok {
		return FormatState{}, NewError(KindNotFound, fmt.Sprintf("job %q not found", jobID), nil)
	}
	state, ok := job.states[format]
	if !ok {
		return FormatState{}, NewError(KindNotFound, fmt.Sprintf("format %q not tracked for job %q", format, jobID), nil)
	}
	return state, nil
}

// States returns all format states for a job in request order.
func (b *StatusBoard) States(jobID string) []FormatState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	job, ok := b.jobs[jobID]
	if !ok {
		return nil
	}
	out := make([]FormatState, 0, len(job.order))
	for _, f := range job.order {
		out = append(out, job.states[f])
	}
	return out
}

// Drop removes a job from the board.
func (b *StatusBoard) Drop(jobID string) {
	b.mu.Lock()
	delete(b.jobs, jobID)
	b.mu.Unlock()
}

func (b *StatusBoard) update(jobID string, format Format, apply func(*FormatState)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	job, ok := b.jobs[jobID]
	if !ok {
		return NewError(KindNotFound, fmt.Sprintf("job %q not found", jobID), nil)
	}
	state, ok := job.states[format]
	if !ok {
		return NewError(KindNotFound, fmt.Sprintf("format %q not tracked for job %q", format, jobID), nil)
	}
	apply(&state)
	job.states[format] = state
	return nil
}
