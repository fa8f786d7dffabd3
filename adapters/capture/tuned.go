package capture

import (
	"context"
	"time"

	"github.com/cvforge/go-cvexport/export"
)

const (
	tunedScale   = 0.9
	tunedTimeout = 4 * time.Second
)

// Tuned is the constrained-environment profile: off-screen capture with a
// reduced scale and a tight time budget. Low-powered clients run it ahead of
// the regular chain.
type Tuned struct {
	Scratch ScratchFactory
	Timeout time.Duration
	Scale   float64
	Settle  time.Duration
}

// NewTuned creates the tuned capture profile on an engine.
func NewTuned(factory ScratchFactory) *Tuned {
	return &Tuned{Scratch: factory, Timeout: tunedTimeout, Scale: tunedScale}
}

func (t *Tuned) Name() string { return "tuned-capture" }

func (t *Tuned) Render(ctx context.Context, in export.PDFInput) ([]byte, error) {
	if t == nil || t.Scratch == nil {
		return nil, export.NewError(export.KindPrecondition, "tuned capture not configured", nil)
	}

	timeout := t.Timeout
	if timeout <= 0 {
		timeout = tunedTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	scale := t.Scale
	if scale == 0 {
		scale = tunedScale
	}

	offscreen := &Offscreen{
		Scratch: t.Scratch,
		Print:   PrintOptions{Scale: scale},
		Settle:  t.Settle,
	}
	return offscreen.Render(ctx, in)
}
