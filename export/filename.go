package export

import "strings"

// Filename derives the download filename for a format: the full name with
// whitespace runs collapsed to single underscores, a "_CV" suffix, and the
// format extension.
func Filename(fullName string, format Format) string {
	base := strings.Join(strings.Fields(strings.TrimSpace(fullName)), "_")
	if base == "" {
		base = "Untitled"
	}
	return base + "_CV." + format.Ext()
}
