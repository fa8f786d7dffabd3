package cv

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goliatone/go-errors"
)

var validate = validator.New()

// Validate enforces the hard preconditions for any export: a full name and a
// well-formed email. Everything else is advisory and belongs to template
// validators.
func (m Model) Validate() error {
	if err := validate.Struct(m); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
		}
		msg := "content model is invalid"
		if len(fields) > 0 {
			msg = msg + ": " + strings.Join(fields, ", ")
		}
		return errors.New(msg, errors.CategoryValidation).
			WithTextCode("MODEL_INVALID")
	}
	return nil
}

// quantifiedMetricPattern matches percentage, currency and multiplier figures
// in achievement text, e.g. "35%", "$1.2M", "3x faster", "increased by 40".
var quantifiedMetricPattern = regexp.MustCompile(
	`(\d+(\.\d+)?\s*%)|([$€£]\s*\d)|(\b\d+(\.\d+)?x\b)|(\b(increased|decreased|reduced|grew|saved|improved)\b[^.]*\b\d)`)

// HasQuantifiedMetric reports whether text contains a measurable figure.
func HasQuantifiedMetric(text string) bool {
	return quantifiedMetricPattern.MatchString(strings.ToLower(text))
}

// CountQuantifiedExperience counts experience entries whose description or
// achievements carry at least one quantified metric.
func CountQuantifiedExperience(entries []Experience) int {
	count := 0
	for _, exp := range entries {
		if HasQuantifiedMetric(exp.Description) {
			count++
			continue
		}
		for _, achievement := range exp.Achievements {
			if HasQuantifiedMetric(achievement) {
				count++
				break
			}
		}
	}
	return count
}

// HasPortfolioLink reports whether the model exposes any public profile or
// portfolio URL.
func HasPortfolioLink(m Model) bool {
	return strings.TrimSpace(m.Personal.Website) != "" ||
		strings.TrimSpace(m.Personal.LinkedIn) != "" ||
		strings.TrimSpace(m.Personal.GitHub) != ""
}
