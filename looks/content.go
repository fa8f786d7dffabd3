package looks

import (
	"strings"

	"github.com/cvforge/go-cvexport/cv"
)

// tokens carries one look's layout constants. Every look owns its own copy;
// looks never share mutable state.
type tokens struct {
	Body       float64
	Heading    float64
	Entry      float64
	Text       RGB
	Muted      RGB
	Accent     RGB
	Track      RGB
	SectionGap float64
	EntryGap   float64
	SkillBars  bool
	Phone      func(string) string
}

// sectionBlocks renders one visible section into layout blocks. An empty
// slice means the section has nothing worth showing.
func sectionBlocks(m cv.Model, s cv.Section, t tokens) []Block {
	if !cv.HasContent(m, s.Type) {
		return nil
	}

	title := SectionTitle{
		Text:    strings.ToUpper(cv.SectionTitle(s)),
		Size:    t.Heading,
		Color:   t.Accent,
		Rule:    true,
		SpaceBy: t.SectionGap,
	}

	var body []Block
	switch s.Type {
	case cv.SectionSummary:
		body = summaryBlocks(m, t)
	case cv.SectionExperience:
		body = experienceBlocks(m, t)
	case cv.SectionEducation:
		body = educationBlocks(m, t)
	case cv.SectionSkills:
		body = skillBlocks(m, t)
	case cv.SectionProjects:
		body = projectBlocks(m, t)
	case cv.SectionCertifications:
		body = certificationBlocks(m, t)
	case cv.SectionLanguages:
		body = languageBlocks(m, t)
	case cv.SectionInterests:
		body = interestBlocks(m, t)
	case cv.SectionReferences:
		body = referenceBlocks(m, t)
	}
	if len(body) == 0 {
		return nil
	}
	return append([]Block{title}, body...)
}

func summaryBlocks(m cv.Model, t tokens) []Block {
	summary := cv.Sanitize(m.Personal.Summary)
	if summary == "" {
		return nil
	}
	return []Block{Paragraph{Text: summary, Size: t.Body, Color: t.Text, SpaceBy: t.EntryGap / 2}}
}

func experienceBlocks(m cv.Model, t tokens) []Block {
	var blocks []Block
	for _, exp := range m.Experience {
		secondary := exp.Company
		if exp.Location != "" {
			secondary = secondary + " · " + exp.Location
		}
		blocks = append(blocks, EntryHead{
			Primary:   exp.Position,
			Aside:     cv.FormatDateRange(exp.StartDate, exp.EndDate, exp.Current, m.Locale),
			Secondary: secondary,
			Size:      t.Entry,
			Color:     t.Text,
			Muted:     t.Muted,
			SpaceBy:   t.EntryGap,
		})
		if desc := cv.Sanitize(exp.Description); desc != "" {
			blocks = append(blocks, Paragraph{Text: desc, Size: t.Body, Color: t.Text, SpaceBy: 2})
		}
		if len(exp.Achievements) > 0 {
			items := make([]string, 0, len(exp.Achievements))
			for _, a := range exp.Achievements {
				if text := cv.Sanitize(a); text != "" {
					items = append(items, text)
				}
			}
			if len(items) > 0 {
				blocks = append(blocks, Bullets{Items: items, Size: t.Body, Color: t.Text, Indent: 12, SpaceBy: 2})
			}
		}
	}
	return blocks
}

func educationBlocks(m cv.Model, t tokens) []Block {
	var blocks []Block
	for _, edu := range m.Education {
		primary := edu.Degree
		if edu.Field != "" {
			if primary != "" {
				primary = primary + ", " + edu.Field
			} else {
				primary = edu.Field
			}
		}
		if primary == "" {
			primary = edu.Institution
		}
		secondary := edu.Institution
		if edu.Location != "" {
			secondary = secondary + " · " + edu.Location
		}
		blocks = append(blocks, EntryHead{
			Primary:   primary,
			Aside:     cv.FormatDateRange(edu.StartDate, edu.EndDate, false, m.Locale),
			Secondary: secondary,
			Size:      t.Entry,
			Color:     t.Text,
			Muted:     t.Muted,
			SpaceBy:   t.EntryGap,
		})
		if desc := cv.Sanitize(edu.Description); desc != "" {
			blocks = append(blocks, Paragraph{Text: desc, Size: t.Body, Color: t.Text, SpaceBy: 2})
		}
	}
	return blocks
}

func skillBlocks(m cv.Model, t tokens) []Block {
	var blocks []Block
	if t.SkillBars {
		for _, skill := range m.Skills {
			blocks = append(blocks, SkillBar{
				Label:   skill.Name,
				Level:   skill.Level,
				Size:    t.Body,
				Color:   t.Text,
				Fill:    t.Accent,
				Track:   t.Track,
				SpaceBy: t.EntryGap / 2,
			})
		}
		return blocks
	}

	categories, grouped := cv.SkillsByCategory(m.Skills)
	for _, category := range categories {
		names := make([]string, 0, len(grouped[category]))
		for _, skill := range grouped[category] {
			names = append(names, skill.Name)
		}
		blocks = append(blocks, KeyValue{
			Key:     category,
			Value:   strings.Join(names, ", "),
			Size:    t.Body,
			Color:   t.Text,
			Muted:   t.Muted,
			SpaceBy: t.EntryGap / 2,
		})
	}
	return blocks
}

func projectBlocks(m cv.Model, t tokens) []Block {
	var blocks []Block
	for _, project := range m.Projects {
		blocks = append(blocks, EntryHead{
			Primary: project.Name,
			Aside:   cv.FormatDateRange(project.StartDate, project.EndDate, false, m.Locale),
			Size:    t.Entry,
			Color:   t.Text,
			Muted:   t.Muted,
			SpaceBy: t.EntryGap,
		})
		if desc := cv.Sanitize(project.Description); desc != "" {
			blocks = append(blocks, Paragraph{Text: desc, Size: t.Body, Color: t.Text, SpaceBy: 2})
		}
		if len(project.Technologies) > 0 {
			blocks = append(blocks, Paragraph{
				Text:    strings.Join(project.Technologies, " · "),
				Size:    t.Body - 1,
				Color:   t.Muted,
				SpaceBy: 2,
			})
		}
		if project.URL != "" {
			blocks = append(blocks, Paragraph{Text: project.URL, Size: t.Body - 1, Color: t.Muted, SpaceBy: 2})
		}
	}
	return blocks
}

func certificationBlocks(m cv.Model, t tokens) []Block {
	var blocks []Block
	for _, cert := range m.Certifications {
		value := cert.Issuer
		if date := cv.FormatShortDate(cert.Date, m.Locale); date != "" {
			if value != "" {
				value = value + " · " + date
			} else {
				value = date
			}
		}
		blocks = append(blocks, KeyValue{
			Key:     cert.Name,
			Value:   value,
			Size:    t.Body,
			Color:   t.Text,
			Muted:   t.Muted,
			SpaceBy: t.EntryGap / 2,
		})
	}
	return blocks
}

func languageBlocks(m cv.Model, t tokens) []Block {
	var blocks []Block
	for _, lang := range m.Languages {
		blocks = append(blocks, KeyValue{
			Key:     lang.Name,
			Value:   lang.Proficiency,
			Size:    t.Body,
			Color:   t.Text,
			Muted:   t.Muted,
			SpaceBy: t.EntryGap / 2,
		})
	}
	return blocks
}

func interestBlocks(m cv.Model, t tokens) []Block {
	items := make([]string, 0, len(m.Interests))
	for _, interest := range m.Interests {
		if text := cv.Sanitize(interest); text != "" {
			items = append(items, text)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return []Block{Paragraph{
		Text:    strings.Join(items, " · "),
		Size:    t.Body,
		Color:   t.Text,
		SpaceBy: t.EntryGap / 2,
	}}
}

// referenceBlocks emits the detailed records or the placeholder sentence.
// Never both: the two are mutually exclusive on a page.
func referenceBlocks(m cv.Model, t tokens) []Block {
	if !cv.ReferencesDetailedMode(m) {
		return []Block{Paragraph{
			Text:    cv.ReferencesPlaceholder,
			Size:    t.Body,
			Color:   t.Muted,
			Italic:  true,
			SpaceBy: t.EntryGap / 2,
		}}
	}

	var blocks []Block
	for _, ref := range m.References {
		secondary := ref.Position
		if ref.Company != "" {
			if secondary != "" {
				secondary = secondary + ", " + ref.Company
			} else {
				secondary = ref.Company
			}
		}
		contact := []string{}
		if ref.Email != "" {
			contact = append(contact, ref.Email)
		}
		if ref.Phone != "" {
			contact = append(contact, t.Phone(ref.Phone))
		}
		if len(contact) > 0 {
			if secondary != "" {
				secondary = secondary + " · "
			}
			secondary = secondary + strings.Join(contact, " · ")
		}
		blocks = append(blocks, EntryHead{
			Primary:   ref.Name,
			Secondary: secondary,
			Size:      t.Entry,
			Color:     t.Text,
			Muted:     t.Muted,
			SpaceBy:   t.EntryGap,
		})
	}
	return blocks
}

// contactLines builds the header contact rows using the look's phone format.
func contactLines(p cv.Personal, phone func(string) string) []string {
	var lines []string
	add := func(value string) {
		if value = strings.TrimSpace(value); value != "" {
			lines = append(lines, value)
		}
	}
	add(p.Email)
	if p.Phone != "" {
		add(phone(p.Phone))
	}
	add(p.Address)
	add(p.Website)
	add(p.LinkedIn)
	add(p.GitHub)
	return lines
}

// formatPhoneSpaced normalizes a phone number into space-grouped digits,
// keeping a leading plus: "+1 415 555 0100".
func formatPhoneSpaced(raw string) string {
	digits, plus := phoneDigits(raw)
	if digits == "" {
		return strings.TrimSpace(raw)
	}
	var groups []string
	for len(digits) > 3 {
		groups = append(groups, digits[:3])
		digits = digits[3:]
	}
	groups = append(groups, digits)
	out := strings.Join(groups, " ")
	if plus {
		out = "+" + out
	}
	return out
}

// formatPhoneDashed renders "415-555-0100" style grouping from the right.
func formatPhoneDashed(raw string) string {
	digits, plus := phoneDigits(raw)
	if digits == "" {
		return strings.TrimSpace(raw)
	}
	var groups []string
	for len(digits) > 4 {
		groups = append([]string{digits[len(digits)-4:]}, groups...)
		digits = digits[:len(digits)-4]
	}
	if digits != "" {
		groups = append([]string{digits}, groups...)
	}
	out := strings.Join(groups, "-")
	if plus {
		out = "+" + out
	}
	return out
}

func phoneDigits(raw string) (string, bool) {
	plus := strings.HasPrefix(strings.TrimSpace(raw), "+")
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String(), plus
}
