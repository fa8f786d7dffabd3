package gonotifications

import (
	"context"
	"testing"

	"github.com/goliatone/go-notifications/pkg/onready"

	"github.com/cvforge/go-cvexport/export/notify"
)

type captureNotifier struct {
	event onready.OnReadyEvent
}

func (c *captureNotifier) Send(ctx context.Context, evt onready.OnReadyEvent) error {
	_ = ctx
	c.event = evt
	return nil
}

func TestNotifier_SendMapsFields(t *testing.T) {
	capture := &captureNotifier{}
	notifier := NewNotifier(capture)

	err := notifier.Send(context.Background(), notify.ExportReadyEvent{
		JobID:      "job-1",
		Outcome:    "full",
		Locale:     "en",
		Recipients: []string{"user-1"},
		Channels:   []string{"email"},
		Files: []notify.ExportedFile{
			{Filename: "Jane_Doe_CV.pdf", Format: "pdf", ContentType: "application/pdf", Size: 1024},
			{Filename: "Jane_Doe_CV.txt", Format: "txt", ContentType: "text/plain; charset=utf-8", Size: 64},
		},
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if capture.event.FileName != "Jane_Doe_CV.pdf" {
		t.Fatalf("expected first filename, got %s", capture.event.FileName)
	}
	if capture.event.Format != "pdf" {
		t.Fatalf("expected pdf format, got %s", capture.event.Format)
	}
	if capture.event.Parts != 2 {
		t.Fatalf("expected 2 parts, got %d", capture.event.Parts)
	}
	if capture.event.Message == "" {
		t.Fatalf("expected default message")
	}
}

func TestNotifier_NotConfigured(t *testing.T) {
	notifier := NewNotifier(nil)
	if err := notifier.Send(context.Background(), notify.ExportReadyEvent{}); err == nil {
		t.Fatalf("expected error when delegate missing")
	}
}
