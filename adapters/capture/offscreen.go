package capture

import (
	"context"
	"time"

	"github.com/cvforge/go-cvexport/export"
)

// Offscreen prints rendered HTML in a scratch page: acquire, load content,
// settle, print, release. The scratch page is released on every exit path.
type Offscreen struct {
	Scratch ScratchFactory
	Print   PrintOptions

	// Settle is the wait after content load before printing, giving fonts
	// and layout a chance to stabilize.
	Settle time.Duration
}

// NewOffscreen creates the off-screen capture strategy on an engine.
func NewOffscreen(factory ScratchFactory) *Offscreen {
	return &Offscreen{Scratch: factory, Settle: 150 * time.Millisecond}
}

func (o *Offscreen) Name() string { return "offscreen-capture" }

func (o *Offscreen) Render(ctx context.Context, in export.PDFInput) ([]byte, error) {
	if o == nil || o.Scratch == nil {
		return nil, export.NewError(export.KindPrecondition, "offscreen capture not configured", nil)
	}
	if in.HTML == "" {
		return nil, export.NewError(export.KindPrecondition, "no rendered html for offscreen capture", nil)
	}

	scratch, err := o.Scratch.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer scratch.Release()

	if err := scratch.SetContent(ctx, in.HTML); err != nil {
		return nil, err
	}

	if o.Settle > 0 {
		timer := time.NewTimer(o.Settle)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return scratch.PrintPDF(ctx, printOptionsFor(o.Print, in))
}
