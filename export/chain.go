package export

import (
	"context"

	"github.com/cvforge/go-cvexport/cv"
)

// PDFInput carries everything a PDF strategy may need. Capture stages use the
// rendered HTML or the preview URL; the declarative fallback uses the model.
type PDFInput struct {
	Model      cv.Model
	TemplateID string
	HTML       string
	PreviewURL string
	Settings   cv.DesignSettings
}

// PDFStrategy is one stage in the PDF generation chain.
type PDFStrategy interface {
	Name() string
	Render(ctx context.Context, in PDFInput) ([]byte, error)
}

// runChain tries strategies in order. Per-stage failures are logged and
// swallowed; only exhaustion surfaces, carrying the last stage error.
func runChain(ctx context.Context, strategies []PDFStrategy, in PDFInput, log Logger) ([]byte, error) {
	if log == nil {
		log = NopLogger{}
	}

	var lastErr error
	for _, strategy := range strategies {
		if strategy == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := strategy.Render(ctx, in)
		if err == nil && len(data) > 0 {
			log.Debugf("pdf strategy %s succeeded (%d bytes)", strategy.Name(), len(data))
			return data, nil
		}
		if err == nil {
			err = NewError(KindCapture, "strategy produced empty output", nil)
		}
		log.Errorf("pdf strategy %s failed: %v", strategy.Name(), err)
		lastErr = err
	}

	if lastErr == nil {
		return nil, NewError(KindPrecondition, "no pdf strategies configured", nil)
	}
	return nil, NewError(KindCapture, "all pdf strategies failed", lastErr)
}
