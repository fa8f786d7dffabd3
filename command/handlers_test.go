package command

import (
	"context"
	"testing"
	"time"

	"github.com/cvforge/go-cvexport/cv"
	"github.com/cvforge/go-cvexport/export"
	"github.com/cvforge/go-cvexport/templates"
)

func commandModel() cv.Model {
	return cv.Model{
		Personal: cv.Personal{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Summary:  "Engineer.",
		},
		Skills: []cv.Skill{{Name: "Go"}},
	}
}

func TestGenerateExport_Validate(t *testing.T) {
	msg := GenerateExport{Job: export.Job{Model: commandModel()}}
	if err := msg.Validate(); err == nil {
		t.Fatalf("expected error for missing formats")
	}

	msg.Job.Formats = []export.Format{"gif"}
	if err := msg.Validate(); err == nil {
		t.Fatalf("expected error for unsupported format")
	}

	msg.Job.Formats = []export.Format{export.FormatTXT}
	msg.Job.Model.Personal.FullName = ""
	if err := msg.Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}

	msg.Job.Model.Personal.FullName = "Jane Doe"
	if err := msg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestGenerateExportHandler_StoresSummary(t *testing.T) {
	orchestrator := export.NewOrchestrator()
	orchestrator.Cadence = func(export.Format) time.Duration { return time.Millisecond }
	handler := NewGenerateExportHandler(orchestrator)

	var result export.Summary
	msg := GenerateExport{
		Job: export.Job{
			Model:      commandModel(),
			TemplateID: "classic",
			Formats:    []export.Format{export.FormatTXT, export.FormatJSON},
		},
		Result: &result,
	}

	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Outcome != export.OutcomeFull {
		t.Fatalf("expected full outcome, got %s", result.Outcome)
	}
	if result.Completed != 2 {
		t.Fatalf("expected 2 completed formats, got %d", result.Completed)
	}
}

func TestGenerateExportHandler_RequiresOrchestrator(t *testing.T) {
	handler := &GenerateExportHandler{}
	err := handler.Execute(context.Background(), GenerateExport{})
	if err == nil {
		t.Fatalf("expected error without orchestrator")
	}
}

func TestValidateModel_Validate(t *testing.T) {
	msg := ValidateModel{Model: commandModel()}
	if err := msg.Validate(); err == nil {
		t.Fatalf("expected error for missing template id")
	}
	msg.TemplateID = "classic"
	if err := msg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateModelHandler_Report(t *testing.T) {
	handler := NewValidateModelHandler(templates.NewDefaultRegistry())

	var report ModelReport
	msg := ValidateModel{
		Model:      commandModel(),
		TemplateID: "classic",
		Result:     &report,
	}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !report.Valid || report.Err != nil {
		t.Fatalf("expected valid report, got %+v", report)
	}
	// No education or certifications: classic flags both as advisory findings.
	if len(report.Warnings) == 0 {
		t.Fatalf("expected advisory warnings for sparse model")
	}
}

func TestValidateModelHandler_HardError(t *testing.T) {
	handler := NewValidateModelHandler(templates.NewDefaultRegistry())

	var report ModelReport
	msg := ValidateModel{
		Model:      cv.Model{Personal: cv.Personal{FullName: "Jane Doe", Email: "not-an-email"}},
		TemplateID: "classic",
		Result:     &report,
	}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if report.Valid || report.Err == nil {
		t.Fatalf("expected invalid report, got %+v", report)
	}
}
