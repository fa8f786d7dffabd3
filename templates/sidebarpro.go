package templates

import (
	"fmt"

	"github.com/cvforge/go-cvexport/cv"
)

// NewSidebarPro is a two-column template that routes skills and languages to
// a tinted sidebar.
func NewSidebarPro() Template {
	meta := Meta{
		ID:          "sidebar-pro",
		Name:        "Sidebar Pro",
		Description: "Two-column layout with a tinted sidebar for skills and languages.",
		Categories:  []string{"professional", "creative"},
		Popularity:  85,
		Structure: Structure{
			SectionOrder: []cv.SectionType{
				cv.SectionSummary, cv.SectionExperience, cv.SectionProjects,
				cv.SectionEducation, cv.SectionCertifications, cv.SectionSkills,
				cv.SectionLanguages, cv.SectionInterests, cv.SectionReferences,
			},
			Layout:      LayoutTwoColumn,
			ColorScheme: "teal",
			FontPairing: "serif-sans",
			Spacing:     cv.SpacingNormal,
		},
	}

	p := palette{
		Primary:    "#0f766e",
		Accent:     "#14b8a6",
		Text:       "#134e4a",
		Muted:      "#5f7470",
		Background: "#ffffff",
		Sidebar:    "#f0fdfa",
		Border:     "#99f6e4",
	}
	extra := fmt.Sprintf(`.cv-sidebar-pro .cv-columns { display: flex; gap: 24px; }
.cv-sidebar-pro .cv-aside { flex: 0 0 32%%; background: %s; padding: 14px; border-radius: 6px; }
.cv-sidebar-pro .cv-main { flex: 1 1 auto; }
.cv-sidebar-pro .cv-aside .cv-section h2 { border-bottom-color: %s; }
.cv-sidebar-pro .cv-skills li[data-level]::after { content: ""; display: inline-block; width: 36px; height: 4px; margin-left: 6px; background: %s; border-radius: 2px; }
`, p.Sidebar, p.Border, p.Accent)

	return &htmlTemplate{
		meta:  meta,
		shell: mustShell(twoColumnShell),
		css:   stylesheet(meta.ID, p, meta.Structure, extra),
		sidebar: map[cv.SectionType]bool{
			cv.SectionSkills:    true,
			cv.SectionLanguages: true,
			cv.SectionInterests: true,
		},
		validate: validateSidebarPro,
	}
}

func validateSidebarPro(m cv.Model) []string {
	var findings []string
	if len(m.Skills) < 5 {
		findings = append(findings, "Sidebar Pro's skills column looks sparse below 5 skills")
	}
	if !cv.HasPortfolioLink(m) {
		findings = append(findings, "Add a portfolio, LinkedIn or GitHub link for this layout's header")
	}
	return findings
}
