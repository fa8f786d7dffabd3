package export

import (
	"strings"

	"github.com/cvforge/go-cvexport/cv"
)

// renderText produces the plain-text rendition: full name, contact lines,
// then each visible section as line-oriented text. Deterministic for a given
// model, no external calls.
func renderText(m cv.Model) []byte {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line(cv.Sanitize(m.Personal.FullName))
	if title := cv.Sanitize(m.Personal.Title); title != "" {
		line(title)
	}
	if m.Personal.Email != "" {
		line(m.Personal.Email)
	}
	if m.Personal.Phone != "" {
		line(m.Personal.Phone)
	}
	for _, extra := range []string{m.Personal.Address, m.Personal.Website, m.Personal.LinkedIn, m.Personal.GitHub} {
		if extra = strings.TrimSpace(extra); extra != "" {
			line(extra)
		}
	}

	for _, s := range cv.VisibleSections(m) {
		body := textSection(m, s)
		if body == "" {
			continue
		}
		title := strings.ToUpper(cv.SectionTitle(s))
		b.WriteByte('\n')
		line(title)
		line(strings.Repeat("-", len(title)))
		b.WriteString(body)
	}

	return []byte(b.String())
}

func textSection(m cv.Model, s cv.Section) string {
	if !cv.HasContent(m, s.Type) {
		return ""
	}

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	switch s.Type {
	case cv.SectionSummary:
		line(cv.Sanitize(m.Personal.Summary))
	case cv.SectionExperience:
		for i, exp := range m.Experience {
			if i > 0 {
				b.WriteByte('\n')
			}
			head := exp.Position
			if exp.Company != "" {
				head += ", " + exp.Company
			}
			if dates := cv.FormatDateRange(exp.StartDate, exp.EndDate, exp.Current, m.Locale); dates != "" {
				head += " (" + dates + ")"
			}
			line(head)
			if desc := cv.Sanitize(exp.Description); desc != "" {
				line(desc)
			}
			for _, a := range exp.Achievements {
				if text := cv.Sanitize(a); text != "" {
					line("- " + text)
				}
			}
		}
	case cv.SectionEducation:
		for _, edu := range m.Education {
			head := edu.Degree
			if edu.Field != "" {
				head += ", " + edu.Field
			}
			if head == "" {
				head = edu.Institution
			} else if edu.Institution != "" {
				head += ", " + edu.Institution
			}
			if dates := cv.FormatDateRange(edu.StartDate, edu.EndDate, false, m.Locale); dates != "" {
				head += " (" + dates + ")"
			}
			line(head)
		}
	case cv.SectionSkills:
		categories, grouped := cv.SkillsByCategory(m.Skills)
		for _, category := range categories {
			names := make([]string, 0, len(grouped[category]))
			for _, skill := range grouped[category] {
				names = append(names, skill.Name)
			}
			line(category + ": " + strings.Join(names, ", "))
		}
	case cv.SectionProjects:
		for _, project := range m.Projects {
			head := project.Name
			if len(project.Technologies) > 0 {
				head += " (" + strings.Join(project.Technologies, ", ") + ")"
			}
			line(head)
			if desc := cv.Sanitize(project.Description); desc != "" {
				line(desc)
			}
			if project.URL != "" {
				line(project.URL)
			}
		}
	case cv.SectionCertifications:
		for _, cert := range m.Certifications {
			head := cert.Name
			if cert.Issuer != "" {
				head += ", " + cert.Issuer
			}
			if date := cv.FormatShortDate(cert.Date, m.Locale); date != "" {
				head += " (" + date + ")"
			}
			line(head)
		}
	case cv.SectionLanguages:
		for _, lang := range m.Languages {
			entry := lang.Name
			if lang.Proficiency != "" {
				entry += ": " + lang.Proficiency
			}
			line(entry)
		}
	case cv.SectionInterests:
		items := make([]string, 0, len(m.Interests))
		for _, interest := range m.Interests {
			if text := cv.Sanitize(interest); text != "" {
				items = append(items, text)
			}
		}
		line(strings.Join(items, ", "))
	case cv.SectionReferences:
		if !cv.ReferencesDetailedMode(m) {
			line(cv.ReferencesPlaceholder)
			break
		}
		for _, ref := range m.References {
			head := ref.Name
			if ref.Position != "" {
				head += ", " + ref.Position
			}
			if ref.Company != "" {
				head += ", " + ref.Company
			}
			line(head)
			if ref.Email != "" {
				line(ref.Email)
			}
			if ref.Phone != "" {
				line(ref.Phone)
			}
		}
	}

	return b.String()
}
