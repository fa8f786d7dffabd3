// Package notify is the completion-notification boundary: the orchestrator
// emits one event per finished job, adapters deliver it.
package notify

import "context"

// ExportReadyNotifier delivers export-ready notifications.
type ExportReadyNotifier interface {
	Send(ctx context.Context, evt ExportReadyEvent) error
}

// ExportReadyEvent describes a finished export job.
type ExportReadyEvent struct {
	JobID      string
	Outcome    string
	Locale     string
	Recipients []string
	Channels   []string
	Message    string
	Files      []ExportedFile
}

// ExportedFile captures one produced artifact's metadata.
type ExportedFile struct {
	Filename    string
	Format      string
	ContentType string
	Size        int64
}
