package capture

import (
	"context"

	"github.com/cvforge/go-cvexport/export"
)

// Direct prints the live preview page: navigate to the preview URL, wait for
// the preview anchor, print. It needs a reachable preview to succeed.
type Direct struct {
	Scratch ScratchFactory
	Anchor  string
	Print   PrintOptions
}

// NewDirect creates the direct capture strategy on an engine.
func NewDirect(factory ScratchFactory) *Direct {
	return &Direct{Scratch: factory, Anchor: DefaultAnchor}
}

func (d *Direct) Name() string { return "direct-capture" }

func (d *Direct) Render(ctx context.Context, in export.PDFInput) ([]byte, error) {
	if d == nil || d.Scratch == nil {
		return nil, export.NewError(export.KindPrecondition, "direct capture not configured", nil)
	}
	if in.PreviewURL == "" {
		return nil, export.NewError(export.KindPrecondition, "no preview url for direct capture", nil)
	}

	scratch, err := d.Scratch.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer scratch.Release()

	anchor := d.Anchor
	if anchor == "" {
		anchor = DefaultAnchor
	}
	if err := scratch.Navigate(ctx, in.PreviewURL, anchor); err != nil {
		return nil, err
	}

	return scratch.PrintPDF(ctx, printOptionsFor(d.Print, in))
}

// printOptionsFor fills unset print options from the model's design settings.
func printOptionsFor(base PrintOptions, in export.PDFInput) PrintOptions {
	opts := base
	if opts.PageSize == "" {
		opts.PageSize = "A4"
	}
	if opts.MarginTop == 0 {
		opts.MarginTop = in.Settings.MarginTop
	}
	if opts.MarginBottom == 0 {
		opts.MarginBottom = in.Settings.MarginBottom
	}
	if opts.MarginLeft == 0 {
		opts.MarginLeft = in.Settings.MarginLeft
	}
	if opts.MarginRight == 0 {
		opts.MarginRight = in.Settings.MarginRight
	}
	if !opts.PrintBackground {
		opts.PrintBackground = true
	}
	return opts
}
