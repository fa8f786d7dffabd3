package export

import (
	"errors"
	"testing"
)

func TestStatusBoard_Lifecycle(t *testing.T) {
	board := NewStatusBoard()
	board.Begin("job-1", []Format{FormatPDF, FormatTXT})

	states := board.States("job-1")
	if len(states) != 2 {
		t.Fatalf("expected 2 states, got %d", len(states))
	}
	for _, state := range states {
		if state.Status != StatusIdle || state.Progress != 0 {
			t.Fatalf("expected idle/0, got %+v", state)
		}
	}

	if err := board.SetStatus("job-1", FormatPDF, StatusGenerating); err != nil {
		t.Fatalf("set status: %v", err)
	}
	state, err := board.State("job-1", FormatPDF)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.StartedAt.IsZero() {
		t.Fatalf("expected started timestamp")
	}

	if err := board.SetStatus("job-1", FormatPDF, StatusComplete); err != nil {
		t.Fatalf("set status: %v", err)
	}
	state, _ = board.State("job-1", FormatPDF)
	if !state.Status.Terminal() || state.FinishedAt.IsZero() {
		t.Fatalf("expected terminal state with finish time, got %+v", state)
	}
}

func TestStatusBoard_ProgressMonotonic(t *testing.T) {
	board := NewStatusBoard()
	board.Begin("job-1", []Format{FormatPDF})

	_ = board.SetProgress("job-1", FormatPDF, 40)
	_ = board.SetProgress("job-1", FormatPDF, 25)
	state, _ := board.State("job-1", FormatPDF)
	if state.Progress != 40 {
		t.Fatalf("expected regression dropped, got %d", state.Progress)
	}

	_ = board.SetProgress("job-1", FormatPDF, 400)
	state, _ = board.State("job-1", FormatPDF)
	if state.Progress != 100 {
		t.Fatalf("expected clamp to 100, got %d", state.Progress)
	}
}

func TestStatusBoard_SetError(t *testing.T) {
	board := NewStatusBoard()
	board.Begin("job-1", []Format{FormatDOCX})

	wantErr := errors.New("boom")
	_ = board.SetError("job-1", FormatDOCX, wantErr)

	state, _ := board.State("job-1", FormatDOCX)
	if state.Status != StatusError {
		t.Fatalf("expected error status, got %s", state.Status)
	}
	if !errors.Is(state.Err, wantErr) {
		t.Fatalf("expected recorded error")
	}
}

func TestStatusBoard_UnknownJob(t *testing.T) {
	board := NewStatusBoard()
	if err := board.SetProgress("missing", FormatPDF, 10); err == nil {
		t.Fatalf("expected error for unknown job")
	}
	if _, err := board.State("missing", FormatPDF); KindFromError(err) != KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
	if states := board.States("missing"); states != nil {
		t.Fatalf("expected nil states")
	}
}

func TestStatusBoard_Drop(t *testing.T) {
	board := NewStatusBoard()
	board.Begin("job-1", []Format{FormatPDF})
	board.Drop("job-1")
	if states := board.States("job-1"); states != nil {
		t.Fatalf("expected job removed")
	}
}
