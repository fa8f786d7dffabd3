// Package capture implements the browser-backed PDF strategies: direct
// capture of a live preview page and off-screen capture of rendered HTML,
// both on a shared headless Chromium instance.
package capture

import (
	"context"
	"fmt"
	"strings"

	"github.com/chromedp/cdproto/page"

	"github.com/cvforge/go-cvexport/export"
)

// DefaultAnchor is the CSS selector direct capture waits on before printing.
const DefaultAnchor = "#cv-preview-root"

const defaultScale = 1.0

// PrintOptions configure the PrintToPDF call. Margins are in points.
type PrintOptions struct {
	PageSize        string
	Scale           float64
	Landscape       bool
	PrintBackground bool
	MarginTop       float64
	MarginBottom    float64
	MarginLeft      float64
	MarginRight     float64
}

// Scratch is a disposable browser page. Release must be called on every
// acquisition, on every exit path.
type Scratch interface {
	Navigate(ctx context.Context, url, waitSelector string) error
	SetContent(ctx context.Context, html string) error
	PrintPDF(ctx context.Context, opts PrintOptions) ([]byte, error)
	Release()
}

// ScratchFactory hands out scratch pages.
type ScratchFactory interface {
	Acquire(ctx context.Context) (Scratch, error)
}

var pageSizesInches = map[string]struct {
	width  float64
	height float64
}{
	"A3":     {width: 11.69, height: 16.54},
	"A4":     {width: 8.27, height: 11.69},
	"A5":     {width: 5.83, height: 8.27},
	"LETTER": {width: 8.5, height: 11},
	"LEGAL":  {width: 8.5, height: 14},
}

func buildPrintParams(opts PrintOptions) (*page.PrintToPDFParams, error) {
	params := page.PrintToPDF()

	scale := opts.Scale
	if scale == 0 {
		scale = defaultScale
	}
	if scale < 0.1 || scale > 2.0 {
		return nil, export.NewError(export.KindValidation, "pdf scale must be between 0.1 and 2.0", nil)
	}
	params = params.WithScale(scale)
	params = params.WithLandscape(opts.Landscape)
	params = params.WithPrintBackground(opts.PrintBackground)

	if opts.PageSize == "" {
		params = params.WithPreferCSSPageSize(true)
	} else {
		size, ok := pageSizesInches[strings.ToUpper(opts.PageSize)]
		if !ok {
			return nil, export.NewError(export.KindValidation, fmt.Sprintf("unsupported pdf page size: %s", opts.PageSize), nil)
		}
		params = params.WithPaperWidth(size.width).WithPaperHeight(size.height)
	}

	params = params.WithMarginTop(pointsToInches(opts.MarginTop))
	params = params.WithMarginBottom(pointsToInches(opts.MarginBottom))
	params = params.WithMarginLeft(pointsToInches(opts.MarginLeft))
	params = params.WithMarginRight(pointsToInches(opts.MarginRight))

	return params, nil
}

func pointsToInches(points float64) float64 {
	if points < 0 {
		return 0
	}
	return points / 72.0
}
