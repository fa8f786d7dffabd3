package templates

import (
	"fmt"

	"github.com/cvforge/go-cvexport/cv"
)

// palette holds the color tokens a template's stylesheet is generated from.
type palette struct {
	Primary    string
	Accent     string
	Text       string
	Muted      string
	Background string
	Sidebar    string
	Border     string
}

func fontStack(pairing string) (heading, body string) {
	switch pairing {
	case "serif":
		return `Georgia, "Times New Roman", serif`, `Georgia, "Times New Roman", serif`
	case "serif-sans":
		return `Georgia, "Times New Roman", serif`, `"Helvetica Neue", Arial, sans-serif`
	case "mono-sans":
		return `"SF Mono", "Fira Code", monospace`, `"Helvetica Neue", Arial, sans-serif`
	default:
		return `"Helvetica Neue", Arial, sans-serif`, `"Helvetica Neue", Arial, sans-serif`
	}
}

func spacingScale(tier cv.SpacingTier) (sectionGap, entryGap string) {
	switch tier {
	case cv.SpacingCompact:
		return "14px", "8px"
	case cv.SpacingRelaxed:
		return "28px", "16px"
	default:
		return "20px", "12px"
	}
}

// stylesheet generates the shared stylesheet skeleton from a palette and the
// template's structure metadata. Template-specific rules are appended via
// extra.
func stylesheet(id string, p palette, s Structure, extra string) string {
	heading, body := fontStack(s.FontPairing)
	sectionGap, entryGap := spacingScale(s.Spacing)

	base := fmt.Sprintf(`.cv-%[1]s { font-family: %[3]s; color: %[4]s; background: %[5]s; line-height: 1.45; }
.cv-%[1]s h1, .cv-%[1]s h2, .cv-%[1]s h3 { font-family: %[2]s; margin: 0; }
.cv-%[1]s h1 { font-size: 26px; color: %[6]s; }
.cv-%[1]s .cv-title { color: %[7]s; margin: 2px 0 0; }
.cv-%[1]s .cv-contact { font-size: 12px; color: %[7]s; }
.cv-%[1]s .cv-sep { margin: 0 6px; }
.cv-%[1]s .cv-section { margin-top: %[9]s; }
.cv-%[1]s .cv-section h2 { font-size: 14px; text-transform: uppercase; letter-spacing: 0.08em; color: %[6]s; border-bottom: 1px solid %[8]s; padding-bottom: 3px; }
.cv-%[1]s .cv-entry { margin-top: %[10]s; }
.cv-%[1]s .cv-entry-head { display: flex; justify-content: space-between; align-items: baseline; }
.cv-%[1]s .cv-entry-head h3 { font-size: 13px; }
.cv-%[1]s .cv-dates { font-size: 11px; color: %[7]s; white-space: nowrap; }
.cv-%[1]s .cv-entry-sub { font-size: 12px; color: %[7]s; margin: 1px 0 0; }
.cv-%[1]s .cv-entry-desc { font-size: 12px; margin: 4px 0 0; }
.cv-%[1]s .cv-achievements { margin: 4px 0 0; padding-left: 18px; font-size: 12px; }
.cv-%[1]s .cv-skills, .cv-%[1]s .cv-languages, .cv-%[1]s .cv-certifications, .cv-%[1]s .cv-references { margin: 4px 0 0; padding-left: 18px; font-size: 12px; }
.cv-%[1]s .cv-references-note { font-size: 12px; font-style: italic; color: %[7]s; }
`, id, heading, body, p.Text, p.Background, p.Primary, p.Muted, p.Border, sectionGap, entryGap)

	return base + extra
}
