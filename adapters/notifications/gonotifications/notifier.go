// Package gonotifications adapts the export-ready boundary to
// go-notifications.
package gonotifications

import (
	"context"
	"fmt"

	"github.com/goliatone/go-notifications/pkg/onready"

	"github.com/cvforge/go-cvexport/export"
	"github.com/cvforge/go-cvexport/export/notify"
)

// Notifier adapts go-notifications OnReadyNotifier to the export boundary.
type Notifier struct {
	delegate onready.OnReadyNotifier
}

// NewNotifier wraps a go-notifications notifier.
func NewNotifier(delegate onready.OnReadyNotifier) *Notifier {
	return &Notifier{delegate: delegate}
}

// Send forwards the event to the underlying go-notifications notifier. The
// on-ready payload carries a single filename, so multi-format jobs report the
// first artifact and the part count.
func (n *Notifier) Send(ctx context.Context, evt notify.ExportReadyEvent) error {
	if n == nil || n.delegate == nil {
		return export.NewError(export.KindPrecondition, "go-notifications notifier not configured", nil)
	}

	payload := onready.OnReadyEvent{
		Recipients: evt.Recipients,
		Locale:     evt.Locale,
		Channels:   evt.Channels,
		Parts:      len(evt.Files),
		Message:    evt.Message,
	}
	if payload.Message == "" {
		payload.Message = fmt.Sprintf("CV export %s finished: %s", evt.JobID, evt.Outcome)
	}
	if len(evt.Files) > 0 {
		payload.FileName = evt.Files[0].Filename
		payload.Format = evt.Files[0].Format
	}

	return n.delegate.Send(ctx, payload)
}
