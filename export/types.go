// Package export orchestrates rendering a CV into its downloadable formats.
// Formats run strictly sequentially; a failed format never aborts its
// siblings, and every requested format ends in a terminal state.
package export

import (
	"context"
	"time"

	"github.com/cvforge/go-cvexport/cv"
)

// Format is an export output format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Valid reports whether the format is one of the supported outputs.
func (f Format) Valid() bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatTXT, FormatJSON, FormatXLSX:
		return true
	}
	return false
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string { return string(f) }

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatTXT:
		return "text/plain; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// FormatStatus captures one format's lifecycle state.
type FormatStatus string

const (
	StatusIdle       FormatStatus = "idle"
	StatusGenerating FormatStatus = "generating"
	StatusComplete   FormatStatus = "complete"
	StatusError      FormatStatus = "error"
)

// Terminal reports whether the status is a terminal state.
func (s FormatStatus) Terminal() bool {
	return s == StatusComplete || s == StatusError
}

// FormatState is the tracked state of one format within a job.
type FormatState struct {
	Format     Format
	Status     FormatStatus
	Progress   int // 0-100, monotonic
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Job is one export request: a model, a template choice, and the formats to
// produce.
type Job struct {
	ID         string
	Model      cv.Model
	TemplateID string
	Formats    []Format

	// StyleID is forwarded to the document-construction service for DOCX
	// output. Empty defaults to TemplateID.
	StyleID string

	// PreviewURL anchors direct capture at a live preview page. Empty
	// disables the direct capture stage.
	PreviewURL string

	// Constrained marks a low-powered environment: the tuned capture
	// profile runs ahead of the regular chain.
	Constrained bool
}

// Outcome classifies a finished job.
type Outcome string

const (
	OutcomeFull    Outcome = "full"
	OutcomePartial Outcome = "partial"
	OutcomeFailed  Outcome = "failed"
)

// Summary is the terminal report for a job.
type Summary struct {
	JobID     string
	Outcome   Outcome
	Completed int
	Failed    int
	States    []FormatState
	Duration  time.Duration
}

// Artifact is one produced output, ready for gating and saving.
type Artifact struct {
	JobID       string
	Format      Format
	Filename    string
	ContentType string
	Data        []byte
}

// Gate suspends a finished artifact before it reaches the save callback.
// Implementations must return exactly once per artifact.
type Gate interface {
	Clear(ctx context.Context, artifact Artifact) error
}

// GateFunc adapts a function to a Gate.
type GateFunc func(ctx context.Context, artifact Artifact) error

func (f GateFunc) Clear(ctx context.Context, artifact Artifact) error {
	if f == nil {
		return nil
	}
	return f(ctx, artifact)
}

// SaveFunc receives each gated artifact exactly once.
type SaveFunc func(ctx context.Context, artifact Artifact) error

// DocumentService builds editable documents out of process. DOCX generation
// delegates here with no fallback.
type DocumentService interface {
	Generate(ctx context.Context, model cv.Model, styleID string) ([]byte, error)
}

// Logger provides logging hooks.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
