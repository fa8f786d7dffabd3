package templates

import (
	"github.com/cvforge/go-cvexport/cv"
)

// NewCompact is a dense mixed-layout template for one-page CVs.
func NewCompact() Template {
	meta := Meta{
		ID:          "compact",
		Name:        "Compact",
		Description: "Dense layout tuned for a strict one-page CV.",
		Categories:  []string{"technology", "graduate"},
		Popularity:  68,
		Structure: Structure{
			SectionOrder: []cv.SectionType{
				cv.SectionSummary, cv.SectionSkills, cv.SectionExperience,
				cv.SectionProjects, cv.SectionEducation, cv.SectionCertifications,
				cv.SectionLanguages, cv.SectionInterests, cv.SectionReferences,
			},
			Layout:      LayoutMixed,
			ColorScheme: "graphite",
			FontPairing: "mono-sans",
			Spacing:     cv.SpacingCompact,
		},
	}

	p := palette{
		Primary:    "#18181b",
		Accent:     "#52525b",
		Text:       "#27272a",
		Muted:      "#71717a",
		Background: "#ffffff",
		Border:     "#d4d4d8",
	}
	extra := `.cv-compact .cv-skills { columns: 2; list-style: none; padding-left: 0; }
.cv-compact .cv-section h2 { font-size: 12px; }
.cv-compact .cv-entry-head h3 { font-size: 12px; }
`

	return &htmlTemplate{
		meta:     meta,
		shell:    mustShell(singleColumnShell),
		css:      stylesheet(meta.ID, p, meta.Structure, extra),
		validate: validateCompact,
	}
}

const compactSummaryLimit = 400

func validateCompact(m cv.Model) []string {
	var findings []string
	if len(m.Personal.Summary) > compactSummaryLimit {
		findings = append(findings, "Compact trims long summaries poorly; keep it under 400 characters")
	}
	if len(m.Skills) < 3 {
		findings = append(findings, "Compact works best with at least 3 skills listed")
	}
	if len(m.Experience) > 5 {
		findings = append(findings, "More than 5 experience entries will likely overflow one page")
	}
	return findings
}
