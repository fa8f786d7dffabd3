package templates

import (
	"fmt"

	"github.com/cvforge/go-cvexport/cv"
)

// NewModern is a single-column template aimed at software and product roles.
func NewModern() Template {
	meta := Meta{
		ID:          "modern",
		Name:        "Modern",
		Description: "Clean single-column layout with accented section headings.",
		Categories:  []string{"professional", "technology"},
		Popularity:  92,
		Structure: Structure{
			SectionOrder: []cv.SectionType{
				cv.SectionSummary, cv.SectionSkills, cv.SectionExperience,
				cv.SectionEducation, cv.SectionProjects, cv.SectionCertifications,
				cv.SectionLanguages, cv.SectionInterests, cv.SectionReferences,
			},
			Layout:      LayoutSingleColumn,
			ColorScheme: "indigo",
			FontPairing: "sans",
			Spacing:     cv.SpacingNormal,
		},
	}

	p := palette{
		Primary:    "#3730a3",
		Accent:     "#6366f1",
		Text:       "#1f2937",
		Muted:      "#6b7280",
		Background: "#ffffff",
		Border:     "#e5e7eb",
	}
	extra := fmt.Sprintf(`.cv-modern .cv-skills li[data-level]::after { content: ""; display: inline-block; width: 40px; height: 4px; margin-left: 6px; background: linear-gradient(to right, %s 0%%, %s 100%%); border-radius: 2px; }
`, p.Accent, p.Border)

	return &htmlTemplate{
		meta:     meta,
		shell:    mustShell(singleColumnShell),
		css:      stylesheet(meta.ID, p, meta.Structure, extra),
		validate: validateModern,
	}
}

func validateModern(m cv.Model) []string {
	var findings []string
	if len(m.Skills) < 3 {
		findings = append(findings, "Modern works best with at least 3 skills listed")
	}
	if len(m.Experience) > 0 {
		quantified := cv.CountQuantifiedExperience(m.Experience)
		if quantified*2 < len(m.Experience) {
			findings = append(findings, "Add quantifiable results (percentages, figures) to more experience entries")
		}
	}
	if m.Personal.Summary == "" {
		findings = append(findings, "A short summary helps recruiters scan this layout")
	}
	return findings
}
