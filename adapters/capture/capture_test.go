package capture

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cvforge/go-cvexport/cv"
	"github.com/cvforge/go-cvexport/export"
)

type stubScratch struct {
	navigateErr error
	contentErr  error
	printErr    error
	pdf         []byte

	navigated    string
	waitedOn     string
	content      string
	printedOpts  PrintOptions
	printCalls   int
	releaseCalls int
}

func (s *stubScratch) Navigate(_ context.Context, url, waitSelector string) error {
	s.navigated = url
	s.waitedOn = waitSelector
	return s.navigateErr
}

func (s *stubScratch) SetContent(_ context.Context, html string) error {
	s.content = html
	return s.contentErr
}

func (s *stubScratch) PrintPDF(_ context.Context, opts PrintOptions) ([]byte, error) {
	s.printCalls++
	s.printedOpts = opts
	return s.pdf, s.printErr
}

func (s *stubScratch) Release() { s.releaseCalls++ }

type stubFactory struct {
	scratch *stubScratch
	err     error
}

func (f *stubFactory) Acquire(_ context.Context) (Scratch, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.scratch, nil
}

func pdfInput() export.PDFInput {
	return export.PDFInput{
		Model:      cv.Model{Personal: cv.Personal{FullName: "Jane Doe", Email: "jane@example.com"}},
		TemplateID: "classic",
		HTML:       "<html><body>cv</body></html>",
		Settings:   cv.DefaultDesignSettings(),
	}
}

func TestOffscreen_PrintsAndReleases(t *testing.T) {
	scratch := &stubScratch{pdf: []byte("%PDF")}
	o := NewOffscreen(&stubFactory{scratch: scratch})
	o.Settle = 0

	data, err := o.Render(context.Background(), pdfInput())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(data) != "%PDF" {
		t.Fatalf("unexpected data %q", data)
	}
	if scratch.content == "" {
		t.Fatalf("expected content loaded into scratch page")
	}
	if scratch.releaseCalls != 1 {
		t.Fatalf("expected one release, got %d", scratch.releaseCalls)
	}
	if scratch.printedOpts.PageSize != "A4" {
		t.Fatalf("expected A4 default, got %q", scratch.printedOpts.PageSize)
	}
	if !scratch.printedOpts.PrintBackground {
		t.Fatalf("expected background printing enabled")
	}
	if scratch.printedOpts.MarginTop != 40 || scratch.printedOpts.MarginLeft != 44 {
		t.Fatalf("expected design margins forwarded, got %+v", scratch.printedOpts)
	}
}

func TestOffscreen_ReleasesOnContentError(t *testing.T) {
	scratch := &stubScratch{contentErr: errors.New("load failed")}
	o := NewOffscreen(&stubFactory{scratch: scratch})
	o.Settle = 0

	if _, err := o.Render(context.Background(), pdfInput()); err == nil {
		t.Fatalf("expected error")
	}
	if scratch.releaseCalls != 1 {
		t.Fatalf("expected release on error path, got %d", scratch.releaseCalls)
	}
	if scratch.printCalls != 0 {
		t.Fatalf("expected no print after content error")
	}
}

func TestOffscreen_ReleasesOnPrintError(t *testing.T) {
	scratch := &stubScratch{printErr: errors.New("print failed")}
	o := NewOffscreen(&stubFactory{scratch: scratch})
	o.Settle = 0

	if _, err := o.Render(context.Background(), pdfInput()); err == nil {
		t.Fatalf("expected error")
	}
	if scratch.releaseCalls != 1 {
		t.Fatalf("expected release on error path, got %d", scratch.releaseCalls)
	}
}

func TestOffscreen_RequiresHTML(t *testing.T) {
	o := NewOffscreen(&stubFactory{scratch: &stubScratch{}})
	in := pdfInput()
	in.HTML = ""

	_, err := o.Render(context.Background(), in)
	if export.KindFromError(err) != export.KindPrecondition {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestOffscreen_CanceledDuringSettle(t *testing.T) {
	scratch := &stubScratch{pdf: []byte("%PDF")}
	o := NewOffscreen(&stubFactory{scratch: scratch})
	o.Settle = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := o.Render(ctx, pdfInput()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if scratch.printCalls != 0 {
		t.Fatalf("expected no print after cancel")
	}
	if scratch.releaseCalls != 1 {
		t.Fatalf("expected release after cancel, got %d", scratch.releaseCalls)
	}
}

func TestDirect_NavigatesToPreview(t *testing.T) {
	scratch := &stubScratch{pdf: []byte("%PDF")}
	d := NewDirect(&stubFactory{scratch: scratch})

	in := pdfInput()
	in.PreviewURL = "https://cv.example.com/preview/42"

	data, err := d.Render(context.Background(), in)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(data) != "%PDF" {
		t.Fatalf("unexpected data %q", data)
	}
	if scratch.navigated != in.PreviewURL {
		t.Fatalf("expected navigation to preview, got %q", scratch.navigated)
	}
	if scratch.waitedOn != DefaultAnchor {
		t.Fatalf("expected wait on default anchor, got %q", scratch.waitedOn)
	}
	if scratch.releaseCalls != 1 {
		t.Fatalf("expected one release, got %d", scratch.releaseCalls)
	}
}

func TestDirect_RequiresPreviewURL(t *testing.T) {
	d := NewDirect(&stubFactory{scratch: &stubScratch{}})

	_, err := d.Render(context.Background(), pdfInput())
	if export.KindFromError(err) != export.KindPrecondition {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestDirect_ReleasesOnNavigateError(t *testing.T) {
	scratch := &stubScratch{navigateErr: errors.New("timeout")}
	d := NewDirect(&stubFactory{scratch: scratch})

	in := pdfInput()
	in.PreviewURL = "https://cv.example.com/preview/42"

	if _, err := d.Render(context.Background(), in); err == nil {
		t.Fatalf("expected error")
	}
	if scratch.releaseCalls != 1 {
		t.Fatalf("expected release on error path, got %d", scratch.releaseCalls)
	}
}

func TestTuned_ReducedScale(t *testing.T) {
	scratch := &stubScratch{pdf: []byte("%PDF")}
	tuned := NewTuned(&stubFactory{scratch: scratch})

	if _, err := tuned.Render(context.Background(), pdfInput()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if scratch.printedOpts.Scale != tunedScale {
		t.Fatalf("expected tuned scale %v, got %v", tunedScale, scratch.printedOpts.Scale)
	}
	if scratch.releaseCalls != 1 {
		t.Fatalf("expected one release, got %d", scratch.releaseCalls)
	}
}

func TestTuned_Timeout(t *testing.T) {
	scratch := &stubScratch{pdf: []byte("%PDF")}
	tuned := NewTuned(&stubFactory{scratch: scratch})
	tuned.Timeout = 5 * time.Millisecond
	tuned.Settle = time.Minute // forces the settle wait past the budget

	_, err := tuned.Render(context.Background(), pdfInput())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestBuildPrintParams(t *testing.T) {
	params, err := buildPrintParams(PrintOptions{
		PageSize:  "a4",
		MarginTop: 72,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if params.PaperWidth != 8.27 || params.PaperHeight != 11.69 {
		t.Fatalf("expected A4 inches, got %v x %v", params.PaperWidth, params.PaperHeight)
	}
	if params.MarginTop != 1.0 {
		t.Fatalf("expected 72pt margin as 1 inch, got %v", params.MarginTop)
	}
	if params.Scale != 1.0 {
		t.Fatalf("expected default scale, got %v", params.Scale)
	}
}

func TestBuildPrintParams_ScaleBounds(t *testing.T) {
	for _, scale := range []float64{0.05, 2.5, -1} {
		if _, err := buildPrintParams(PrintOptions{Scale: scale}); err == nil {
			t.Fatalf("expected scale %v rejected", scale)
		}
	}
}

func TestBuildPrintParams_UnknownPageSize(t *testing.T) {
	_, err := buildPrintParams(PrintOptions{PageSize: "TABLOID"})
	if export.KindFromError(err) != export.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBuildPrintParams_CSSPageSizeFallback(t *testing.T) {
	params, err := buildPrintParams(PrintOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !params.PreferCSSPageSize {
		t.Fatalf("expected CSS page size preference when no size given")
	}
}
