package templates

import (
	"fmt"
	"html"
	"strings"

	"github.com/cvforge/go-cvexport/cv"
)

// RenderSection renders one section's inner markup for a model. It returns
// the empty string when the section has no content worth showing; callers
// drop empty output so no empty heading is ever emitted.
func RenderSection(m cv.Model, s cv.Section) string {
	if !cv.HasContent(m, s.Type) {
		return ""
	}

	var body string
	switch s.Type {
	case cv.SectionSummary:
		body = renderSummary(m)
	case cv.SectionExperience:
		body = renderExperience(m)
	case cv.SectionEducation:
		body = renderEducation(m)
	case cv.SectionSkills:
		body = renderSkills(m)
	case cv.SectionProjects:
		body = renderProjects(m)
	case cv.SectionCertifications:
		body = renderCertifications(m)
	case cv.SectionLanguages:
		body = renderLanguages(m)
	case cv.SectionInterests:
		body = renderInterests(m)
	case cv.SectionReferences:
		body = renderReferences(m)
	}
	if body == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<section class="cv-section cv-%s">`, s.Type)
	fmt.Fprintf(&b, `<h2>%s</h2>`, esc(cv.SectionTitle(s)))
	b.WriteString(body)
	b.WriteString(`</section>`)
	return b.String()
}

func esc(text string) string {
	return html.EscapeString(text)
}

func escFree(text string) string {
	return html.EscapeString(cv.Sanitize(text))
}

func renderSummary(m cv.Model) string {
	summary := escFree(m.Personal.Summary)
	if summary == "" {
		return ""
	}
	return `<p class="cv-summary">` + summary + `</p>`
}

func renderExperience(m cv.Model) string {
	var b strings.Builder
	for _, exp := range m.Experience {
		b.WriteString(`<article class="cv-entry">`)
		b.WriteString(`<div class="cv-entry-head">`)
		fmt.Fprintf(&b, `<h3>%s</h3>`, esc(exp.Position))
		if dates := cv.FormatDateRange(exp.StartDate, exp.EndDate, exp.Current, m.Locale); dates != "" {
			fmt.Fprintf(&b, `<span class="cv-dates">%s</span>`, esc(dates))
		}
		b.WriteString(`</div>`)
		company := exp.Company
		if exp.Location != "" {
			company = company + " · " + exp.Location
		}
		fmt.Fprintf(&b, `<p class="cv-entry-sub">%s</p>`, esc(company))
		if desc := escFree(exp.Description); desc != "" {
			fmt.Fprintf(&b, `<p class="cv-entry-desc">%s</p>`, desc)
		}
		if len(exp.Achievements) > 0 {
			b.WriteString(`<ul class="cv-achievements">`)
			for _, item := range exp.Achievements {
				fmt.Fprintf(&b, `<li>%s</li>`, escFree(item))
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</article>`)
	}
	return b.String()
}

func renderEducation(m cv.Model) string {
	var b strings.Builder
	for _, edu := range m.Education {
		b.WriteString(`<article class="cv-entry">`)
		b.WriteString(`<div class="cv-entry-head">`)
		degree := edu.Degree
		if edu.Field != "" {
			if degree != "" {
				degree = degree + ", " + edu.Field
			} else {
				degree = edu.Field
			}
		}
		if degree == "" {
			degree = edu.Institution
		}
		fmt.Fprintf(&b, `<h3>%s</h3>`, esc(degree))
		if dates := cv.FormatDateRange(edu.StartDate, edu.EndDate, false, m.Locale); dates != "" {
			fmt.Fprintf(&b, `<span class="cv-dates">%s</span>`, esc(dates))
		}
		b.WriteString(`</div>`)
		institution := edu.Institution
		if edu.Location != "" {
			institution = institution + " · " + edu.Location
		}
		fmt.Fprintf(&b, `<p class="cv-entry-sub">%s</p>`, esc(institution))
		if desc := escFree(edu.Description); desc != "" {
			fmt.Fprintf(&b, `<p class="cv-entry-desc">%s</p>`, desc)
		}
		b.WriteString(`</article>`)
	}
	return b.String()
}

func renderSkills(m cv.Model) string {
	categories, grouped := cv.SkillsByCategory(m.Skills)
	var b strings.Builder
	for _, category := range categories {
		b.WriteString(`<div class="cv-skill-group">`)
		if len(categories) > 1 || category != "General" {
			fmt.Fprintf(&b, `<h4>%s</h4>`, esc(category))
		}
		b.WriteString(`<ul class="cv-skills">`)
		for _, skill := range grouped[category] {
			if skill.Level > 0 {
				fmt.Fprintf(&b, `<li data-level="%d">%s</li>`, skill.Level, esc(skill.Name))
			} else {
				fmt.Fprintf(&b, `<li>%s</li>`, esc(skill.Name))
			}
		}
		b.WriteString(`</ul></div>`)
	}
	return b.String()
}

func renderProjects(m cv.Model) string {
	var b strings.Builder
	for _, project := range m.Projects {
		b.WriteString(`<article class="cv-entry">`)
		b.WriteString(`<div class="cv-entry-head">`)
		fmt.Fprintf(&b, `<h3>%s</h3>`, esc(project.Name))
		if dates := cv.FormatDateRange(project.StartDate, project.EndDate, false, m.Locale); dates != "" {
			fmt.Fprintf(&b, `<span class="cv-dates">%s</span>`, esc(dates))
		}
		b.WriteString(`</div>`)
		if desc := escFree(project.Description); desc != "" {
			fmt.Fprintf(&b, `<p class="cv-entry-desc">%s</p>`, desc)
		}
		if len(project.Technologies) > 0 {
			fmt.Fprintf(&b, `<p class="cv-tech">%s</p>`, esc(strings.Join(project.Technologies, " · ")))
		}
		if project.URL != "" {
			fmt.Fprintf(&b, `<p class="cv-link">%s</p>`, esc(project.URL))
		}
		b.WriteString(`</article>`)
	}
	return b.String()
}

func renderCertifications(m cv.Model) string {
	var b strings.Builder
	b.WriteString(`<ul class="cv-certifications">`)
	for _, cert := range m.Certifications {
		b.WriteString(`<li>`)
		fmt.Fprintf(&b, `<span class="cv-cert-name">%s</span>`, esc(cert.Name))
		if cert.Issuer != "" {
			fmt.Fprintf(&b, ` <span class="cv-cert-issuer">%s</span>`, esc(cert.Issuer))
		}
		if date := cv.FormatShortDate(cert.Date, m.Locale); date != "" {
			fmt.Fprintf(&b, ` <span class="cv-dates">%s</span>`, esc(date))
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}

func renderLanguages(m cv.Model) string {
	var b strings.Builder
	b.WriteString(`<ul class="cv-languages">`)
	for _, lang := range m.Languages {
		if lang.Proficiency != "" {
			fmt.Fprintf(&b, `<li>%s <span class="cv-proficiency">%s</span></li>`,
				esc(lang.Name), esc(lang.Proficiency))
		} else {
			fmt.Fprintf(&b, `<li>%s</li>`, esc(lang.Name))
		}
	}
	b.WriteString(`</ul>`)
	return b.String()
}

func renderInterests(m cv.Model) string {
	items := make([]string, 0, len(m.Interests))
	for _, interest := range m.Interests {
		if text := escFree(interest); text != "" {
			items = append(items, text)
		}
	}
	if len(items) == 0 {
		return ""
	}
	return `<p class="cv-interests">` + strings.Join(items, " · ") + `</p>`
}

func renderReferences(m cv.Model) string {
	if !cv.ReferencesDetailedMode(m) {
		return `<p class="cv-references-note">` + esc(cv.ReferencesPlaceholder) + `</p>`
	}
	var b strings.Builder
	b.WriteString(`<ul class="cv-references">`)
	for _, ref := range m.References {
		b.WriteString(`<li>`)
		fmt.Fprintf(&b, `<span class="cv-ref-name">%s</span>`, esc(ref.Name))
		detail := ref.Position
		if ref.Company != "" {
			if detail != "" {
				detail = detail + ", " + ref.Company
			} else {
				detail = ref.Company
			}
		}
		if detail != "" {
			fmt.Fprintf(&b, ` <span class="cv-ref-detail">%s</span>`, esc(detail))
		}
		if ref.Email != "" {
			fmt.Fprintf(&b, ` <span class="cv-ref-contact">%s</span>`, esc(ref.Email))
		}
		if ref.Phone != "" {
			fmt.Fprintf(&b, ` <span class="cv-ref-contact">%s</span>`, esc(ref.Phone))
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}
