package cv

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/cv.schema.json
var modelSchema []byte

// SchemaFindings lists the field-level problems a JSON document has against
// the embedded content-model schema.
type SchemaFindings []string

// ValidateJSON checks a raw JSON document against the content-model schema.
// A non-nil error means the validation itself could not run; schema
// violations come back as findings.
func ValidateJSON(data []byte) (SchemaFindings, error) {
	schemaLoader := gojsonschema.NewBytesLoader(modelSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "schema validation failed").
			WithTextCode("SCHEMA_VALIDATION_FAILED")
	}
	if result.Valid() {
		return nil, nil
	}

	findings := make(SchemaFindings, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		findings = append(findings, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return findings, nil
}

// LoadJSON parses and validates a content model from JSON. Schema violations
// are returned as a validation error listing every finding.
func LoadJSON(data []byte) (Model, error) {
	findings, err := ValidateJSON(data)
	if err != nil {
		return Model{}, err
	}
	if len(findings) > 0 {
		return Model{}, errors.New("content model does not match schema: "+strings.Join(findings, "; "), errors.CategoryValidation).
			WithTextCode("SCHEMA_MISMATCH")
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return Model{}, errors.Wrap(err, errors.CategoryValidation, "content model JSON is malformed").
			WithTextCode("MODEL_MALFORMED")
	}
	return model, nil
}
