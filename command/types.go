// Package command exposes go-command message/handler pairs around the
// export orchestrator.
package command

import (
	"github.com/goliatone/go-errors"

	"github.com/cvforge/go-cvexport/cv"
	"github.com/cvforge/go-cvexport/export"
)

// GenerateExport runs an export job.
type GenerateExport struct {
	Job    export.Job
	Result *export.Summary
}

func (GenerateExport) Type() string { return "cv:export:generate" }

func (msg GenerateExport) Validate() error {
	if len(msg.Job.Formats) == 0 {
		return errors.New("at least one format is required", errors.CategoryValidation).
			WithTextCode("FORMATS_REQUIRED")
	}
	for _, f := range msg.Job.Formats {
		if !f.Valid() {
			return errors.New("unsupported format: "+string(f), errors.CategoryValidation).
				WithTextCode("FORMAT_UNSUPPORTED")
		}
	}
	if msg.Job.Model.Personal.FullName == "" {
		return errors.New("model full name is required", errors.CategoryValidation).
			WithTextCode("FULL_NAME_REQUIRED")
	}
	return nil
}

// ValidateModel checks a model for hard errors and collects the selected
// template's advisory warnings.
type ValidateModel struct {
	Model      cv.Model
	TemplateID string
	Result     *ModelReport
}

func (ValidateModel) Type() string { return "cv:model:validate" }

func (msg ValidateModel) Validate() error {
	if msg.TemplateID == "" {
		return errors.New("template id is required", errors.CategoryValidation).
			WithTextCode("TEMPLATE_ID_REQUIRED")
	}
	return nil
}

// ModelReport is the outcome of a model validation run.
type ModelReport struct {
	Valid    bool
	Err      error
	Warnings []string
}
