package export

import (
	"encoding/json"
	"time"

	"github.com/cvforge/go-cvexport/cv"
)

// backupEnvelope is the JSON export payload: the full model plus enough
// context to re-import it later.
type backupEnvelope struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`
	TemplateID string    `json:"templateId,omitempty"`
	Model      cv.Model  `json:"model"`
}

const backupVersion = 1

// renderJSON produces the backup envelope for a model.
func renderJSON(m cv.Model, templateID string, now time.Time) ([]byte, error) {
	envelope := backupEnvelope{
		Version:    backupVersion,
		ExportedAt: now.UTC(),
		TemplateID: templateID,
		Model:      m,
	}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, NewError(KindInternal, "json encode failed", err)
	}
	return data, nil
}
