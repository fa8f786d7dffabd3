package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cvforge/go-cvexport/cv"
	"github.com/cvforge/go-cvexport/export/notify"
	"github.com/cvforge/go-cvexport/looks"
	"github.com/cvforge/go-cvexport/templates"
)

// Orchestrator runs export jobs. Formats are processed strictly
// sequentially; each format's progress ticker is joined before the next
// format starts.
type Orchestrator struct {
	Templates  *templates.Registry
	Looks      *looks.Set
	Direct     PDFStrategy
	Offscreen  PDFStrategy
	Tuned      PDFStrategy
	DocService DocumentService
	Gate       Gate
	Save       SaveFunc
	Board      *StatusBoard
	Logger     Logger
	Notifier   notify.ExportReadyNotifier

	// SkipGateForText lets plain-text artifacts bypass the gate.
	SkipGateForText bool

	// Cadence overrides the per-format ticker cadence. Nil uses defaults.
	Cadence func(Format) time.Duration

	Now         func() time.Time
	IDGenerator func() string
}

// NewOrchestrator creates an orchestrator with the built-in templates and
// looks. Capture strategies, the document service, gate, and save callback
// are wired by the caller.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		Templates:   templates.NewDefaultRegistry(),
		Looks:       looks.NewSet(),
		Board:       NewStatusBoard(),
		Logger:      NopLogger{},
		Now:         time.Now,
		IDGenerator: defaultIDGenerator(),
	}
}

func defaultIDGenerator() func() string {
	return uuid.NewString
}

// Run executes one job. It returns an error only when the job cannot start;
// per-format failures are isolated and reported through the summary.
func (o *Orchestrator) Run(ctx context.Context, job Job) (Summary, error) {
	if o == nil {
		return Summary{}, AsGoError(NewError(KindInternal, "orchestrator is nil", nil))
	}
	if o.Board == nil {
		o.Board = NewStatusBoard()
	}
	if o.Logger == nil {
		o.Logger = NopLogger{}
	}
	if o.Looks == nil {
		o.Looks = looks.NewSet()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.IDGenerator == nil {
		o.IDGenerator = defaultIDGenerator()
	}

	if len(job.Formats) == 0 {
		return Summary{}, AsGoError(NewError(KindValidation, "at least one format is required", nil))
	}
	for _, f := range job.Formats {
		if !f.Valid() {
			return Summary{}, AsGoError(NewError(KindValidation, fmt.Sprintf("unsupported format %q", f), nil))
		}
	}
	if err := job.Model.Validate(); err != nil {
		return Summary{}, AsGoError(NewError(KindValidation, "model is not exportable", err))
	}

	if job.ID == "" {
		job.ID = o.IDGenerator()
	}
	if job.StyleID == "" {
		job.StyleID = job.TemplateID
	}

	started := o.Now()
	o.Board.Begin(job.ID, job.Formats)
	o.Logger.Infof("export job %s started: template=%s formats=%v", job.ID, job.TemplateID, job.Formats)

	var artifacts []Artifact
	for _, format := range job.Formats {
		if artifact, ok := o.runFormat(ctx, job, format); ok {
			artifacts = append(artifacts, artifact)
		}
	}

	summary := o.summarize(job.ID, o.Now().Sub(started))
	o.Logger.Infof("export job %s finished: outcome=%s completed=%d failed=%d",
		job.ID, summary.Outcome, summary.Completed, summary.Failed)
	o.notifyReady(ctx, job, summary, artifacts)
	return summary, nil
}

// runFormat drives one format through generation, gating, and saving. Every
// exit leaves the format in a terminal state.
func (o *Orchestrator) runFormat(ctx context.Context, job Job, format Format) (Artifact, bool) {
	_ = o.Board.SetStatus(job.ID, format, StatusGenerating)

	var cadence time.Duration
	if o.Cadence != nil {
		cadence = o.Cadence(format)
	}
	ticker := startProgress(o.Board, job.ID, format, cadence)
	data, err := o.generate(ctx, job, format)
	ticker.stop()

	if err != nil {
		o.Logger.Errorf("export job %s: format %s failed: %v", job.ID, format, err)
		_ = o.Board.SetError(job.ID, format, err)
		return Artifact{}, false
	}

	artifact := Artifact{
		JobID:       job.ID,
		Format:      format,
		Filename:    Filename(job.Model.Personal.FullName, format),
		ContentType: format.ContentType(),
		Data:        data,
	}

	if o.Gate != nil && !(format == FormatTXT && o.SkipGateForText) {
		if err := o.Gate.Clear(ctx, artifact); err != nil {
			o.Logger.Errorf("export job %s: format %s gate rejected: %v", job.ID, format, err)
			_ = o.Board.SetError(job.ID, format, NewError(KindPrecondition, "artifact gate rejected", err))
			return Artifact{}, false
		}
	}

	if o.Save != nil {
		if err := o.Save(ctx, artifact); err != nil {
			o.Logger.Errorf("export job %s: format %s save failed: %v", job.ID, format, err)
			_ = o.Board.SetError(job.ID, format, NewError(KindInternal, "artifact save failed", err))
			return Artifact{}, false
		}
	}

	_ = o.Board.SetProgress(job.ID, format, 100)
	_ = o.Board.SetStatus(job.ID, format, StatusComplete)
	return artifact, true
}

func (o *Orchestrator) generate(ctx context.Context, job Job, format Format) ([]byte, error) {
	switch format {
	case FormatPDF:
		return o.generatePDF(ctx, job)
	case FormatDOCX:
		if o.DocService == nil {
			return nil, NewError(KindPrecondition, "document service not configured", nil)
		}
		data, err := o.DocService.Generate(ctx, job.Model, job.StyleID)
		if err != nil {
			return nil, NewError(KindInternal, "document service failed", err)
		}
		return data, nil
	case FormatTXT:
		return renderText(job.Model), nil
	case FormatJSON:
		return renderJSON(job.Model, job.TemplateID, o.Now())
	case FormatXLSX:
		return renderXLSX(job.Model)
	default:
		return nil, NewError(KindValidation, fmt.Sprintf("unsupported format %q", format), nil)
	}
}

// generatePDF walks the strategy chain. Constrained environments put the
// tuned capture profile first; the declarative path closes every chain.
func (o *Orchestrator) generatePDF(ctx context.Context, job Job) ([]byte, error) {
	in := PDFInput{
		Model:      job.Model,
		TemplateID: job.TemplateID,
		PreviewURL: job.PreviewURL,
		Settings:   job.Model.Design(),
	}

	if html, err := o.renderHTML(job.Model, job.TemplateID); err == nil {
		in.HTML = html
	} else {
		o.Logger.Debugf("export job %s: capture html unavailable: %v", job.ID, err)
	}

	var strategies []PDFStrategy
	if job.Constrained && o.Tuned != nil {
		strategies = append(strategies, o.Tuned)
	}
	if o.Direct != nil && in.PreviewURL != "" {
		strategies = append(strategies, o.Direct)
	}
	if o.Offscreen != nil && in.HTML != "" {
		strategies = append(strategies, o.Offscreen)
	}
	strategies = append(strategies, declarativeStrategy{looks: o.Looks})

	return runChain(ctx, strategies, in, o.Logger)
}

// renderHTML produces the full standalone page capture stages print.
func (o *Orchestrator) renderHTML(m cv.Model, templateID string) (string, error) {
	if o.Templates == nil {
		return "", NewError(KindPrecondition, "template registry not configured", nil)
	}
	tpl, ok := o.Templates.Get(templateID)
	if !ok {
		return "", NewError(KindNotFound, fmt.Sprintf("template %q not registered", templateID), nil)
	}
	body, err := tpl.Render(m)
	if err != nil {
		return "", err
	}
	return "<!DOCTYPE html><html><head><meta charset=\"utf-8\"><style>" +
		tpl.CSS() + "</style></head><body>" + body + "</body></html>", nil
}

// declarativeStrategy is the guaranteed chain terminator: build the mapped
// look's block tree and paginate it locally.
type declarativeStrategy struct {
	looks *looks.Set
}

func (declarativeStrategy) Name() string { return "declarative" }

func (s declarativeStrategy) Render(ctx context.Context, in PDFInput) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	look := s.looks.ForTemplate(in.TemplateID)
	if look == nil {
		return nil, NewError(KindPrecondition, "no look registered for declarative rendering", nil)
	}
	doc, err := look.Build(in.Model, in.Settings)
	if err != nil {
		return nil, err
	}
	return looks.Render(doc)
}

func (o *Orchestrator) summarize(jobID string, duration time.Duration) Summary {
	states := o.Board.States(jobID)
	summary := Summary{JobID: jobID, States: states, Duration: duration}
	for _, state := range states {
		switch state.Status {
		case StatusComplete:
			summary.Completed++
		case StatusError:
			summary.Failed++
		}
	}
	switch {
	case summary.Failed == 0:
		summary.Outcome = OutcomeFull
	case summary.Completed == 0:
		summary.Outcome = OutcomeFailed
	default:
		summary.Outcome = OutcomePartial
	}
	return summary
}

func (o *Orchestrator) notifyReady(ctx context.Context, job Job, summary Summary, artifacts []Artifact) {
	if o.Notifier == nil || len(artifacts) == 0 {
		return
	}
	evt := notify.ExportReadyEvent{
		JobID:   job.ID,
		Outcome: string(summary.Outcome),
		Locale:  job.Model.Locale,
	}
	for _, artifact := range artifacts {
		evt.Files = append(evt.Files, notify.ExportedFile{
			Filename:    artifact.Filename,
			Format:      string(artifact.Format),
			ContentType: artifact.ContentType,
			Size:        int64(len(artifact.Data)),
		})
	}
	if err := o.Notifier.Send(ctx, evt); err != nil {
		o.Logger.Errorf("export job %s: ready notification failed: %v", job.ID, err)
	}
}
