package templates

import (
	"github.com/cvforge/go-cvexport/cv"
)

// NewClassic is a serif single-column template aimed at academic and
// executive audiences.
func NewClassic() Template {
	meta := Meta{
		ID:          "classic",
		Name:        "Classic",
		Description: "Traditional serif layout for academic and executive profiles.",
		Categories:  []string{"executive", "academic"},
		Popularity:  77,
		Structure: Structure{
			SectionOrder: []cv.SectionType{
				cv.SectionSummary, cv.SectionExperience, cv.SectionEducation,
				cv.SectionCertifications, cv.SectionSkills, cv.SectionProjects,
				cv.SectionLanguages, cv.SectionInterests, cv.SectionReferences,
			},
			Layout:      LayoutSingleColumn,
			ColorScheme: "slate",
			FontPairing: "serif",
			Spacing:     cv.SpacingRelaxed,
		},
	}

	p := palette{
		Primary:    "#1e293b",
		Accent:     "#475569",
		Text:       "#0f172a",
		Muted:      "#64748b",
		Background: "#ffffff",
		Border:     "#cbd5e1",
	}
	extra := `.cv-classic .cv-header { text-align: center; }
.cv-classic .cv-section h2 { text-align: center; border-bottom: none; border-top: 1px solid ` + p.Border + `; padding-top: 6px; }
`

	return &htmlTemplate{
		meta:     meta,
		shell:    mustShell(singleColumnShell),
		css:      stylesheet(meta.ID, p, meta.Structure, extra),
		validate: validateClassic,
	}
}

func validateClassic(m cv.Model) []string {
	var findings []string
	if len(m.Education) == 0 {
		findings = append(findings, "Classic expects at least one education entry")
	}
	if len(m.Certifications) == 0 {
		findings = append(findings, "Executive and academic readers look for certifications or credentials")
	}
	if m.ReferencesDisplay == cv.ReferencesDetailed && len(m.References) == 0 {
		findings = append(findings, "Detailed references are enabled but no reference records exist")
	}
	return findings
}
