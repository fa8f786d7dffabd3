package command

import (
	"context"

	gcmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-errors"

	"github.com/cvforge/go-cvexport/export"
	"github.com/cvforge/go-cvexport/templates"
)

// GenerateExportHandler runs export jobs.
type GenerateExportHandler struct {
	Orchestrator *export.Orchestrator
}

func NewGenerateExportHandler(orchestrator *export.Orchestrator) *GenerateExportHandler {
	return &GenerateExportHandler{Orchestrator: orchestrator}
}

func (h *GenerateExportHandler) Execute(ctx context.Context, msg GenerateExport) error {
	if h == nil || h.Orchestrator == nil {
		return errors.New("export orchestrator is required", errors.CategoryInternal).
			WithTextCode("ORCHESTRATOR_REQUIRED")
	}
	summary, err := h.Orchestrator.Run(ctx, msg.Job)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = summary
	}
	if res := gcmd.ResultFromContext[export.Summary](ctx); res != nil {
		res.Store(summary)
	}
	return nil
}

// ValidateModelHandler reports hard validation errors and the selected
// template's advisory warnings.
type ValidateModelHandler struct {
	Registry *templates.Registry
}

func NewValidateModelHandler(registry *templates.Registry) *ValidateModelHandler {
	return &ValidateModelHandler{Registry: registry}
}

func (h *ValidateModelHandler) Execute(ctx context.Context, msg ValidateModel) error {
	if h == nil || h.Registry == nil {
		return errors.New("template registry is required", errors.CategoryInternal).
			WithTextCode("REGISTRY_REQUIRED")
	}

	report := ModelReport{Valid: true}
	if err := msg.Model.Validate(); err != nil {
		report.Valid = false
		report.Err = err
	}
	if tpl, ok := h.Registry.Get(msg.TemplateID); ok {
		report.Warnings = tpl.Validate(msg.Model)
	}

	if msg.Result != nil {
		*msg.Result = report
	}
	if res := gcmd.ResultFromContext[ModelReport](ctx); res != nil {
		res.Store(report)
	}
	return nil
}
