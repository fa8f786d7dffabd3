package cv

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips all markup from user-supplied free text. Template
// renderers call this before injecting model text into markup so a pasted
// summary can never smuggle tags into the output.
func Sanitize(text string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(text))
}
