package cv

import (
	"sort"
	"strings"
)

// ReferencesPlaceholder is the footer sentence emitted instead of the
// detailed references block.
const ReferencesPlaceholder = "References available upon request"

var defaultOrder = []SectionType{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionCertifications,
	SectionLanguages,
	SectionInterests,
	SectionReferences,
}

// DefaultSections returns the canonical section set used when a model
// supplies none. All sections are visible in the canonical order.
func DefaultSections() []Section {
	sections := make([]Section, 0, len(defaultOrder))
	for i, t := range defaultOrder {
		sections = append(sections, Section{
			ID:      string(t),
			Type:    t,
			Visible: true,
			Order:   i,
		})
	}
	return sections
}

// VisibleSections resolves the model's section list: the explicit list if
// non-empty, else the canonical default, filtered to visible entries and
// sorted ascending by order. Ties break on type so resolution stays
// deterministic even for producers that violate the total-order contract.
func VisibleSections(m Model) []Section {
	source := m.Sections
	if len(source) == 0 {
		source = DefaultSections()
	}

	visible := make([]Section, 0, len(source))
	for _, s := range source {
		if s.Visible && s.Type.Valid() {
			visible = append(visible, s)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].Order != visible[j].Order {
			return visible[i].Order < visible[j].Order
		}
		return visible[i].Type < visible[j].Type
	})
	return visible
}

// SectionTitle returns the section's explicit title, or the default title
// for its type.
func SectionTitle(s Section) string {
	if title := strings.TrimSpace(s.Title); title != "" {
		return title
	}
	return DefaultTitle(s.Type)
}

// DefaultTitle returns the display title for a section type.
func DefaultTitle(t SectionType) string {
	switch t {
	case SectionSummary:
		return "Summary"
	case SectionExperience:
		return "Experience"
	case SectionEducation:
		return "Education"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	case SectionCertifications:
		return "Certifications"
	case SectionLanguages:
		return "Languages"
	case SectionInterests:
		return "Interests"
	case SectionReferences:
		return "References"
	}
	return ""
}

// HasContent reports whether the model carries anything worth rendering for
// the given section type. Sections without content are dropped so no empty
// heading is ever emitted.
func HasContent(m Model, t SectionType) bool {
	switch t {
	case SectionSummary:
		return strings.TrimSpace(m.Personal.Summary) != ""
	case SectionExperience:
		return len(m.Experience) > 0
	case SectionEducation:
		return len(m.Education) > 0
	case SectionSkills:
		return len(m.Skills) > 0
	case SectionProjects:
		return len(m.Projects) > 0
	case SectionCertifications:
		return len(m.Certifications) > 0
	case SectionLanguages:
		return len(m.Languages) > 0
	case SectionInterests:
		return len(m.Interests) > 0
	case SectionReferences:
		return ShowReferences(m)
	}
	return false
}

// ShowReferences applies the references visibility rule: the section renders
// only when detailed display has at least one record, or the display mode is
// available-on-request.
func ShowReferences(m Model) bool {
	switch m.ReferencesDisplay {
	case ReferencesOnRequest:
		return true
	case ReferencesDetailed:
		return len(m.References) > 0
	default:
		// Unset display mode behaves as detailed.
		return len(m.References) > 0
	}
}

// ReferencesDetailedMode reports whether the references section should render
// full contact records rather than the placeholder sentence. The two are
// mutually exclusive.
func ReferencesDetailedMode(m Model) bool {
	if m.ReferencesDisplay == ReferencesOnRequest {
		return false
	}
	return len(m.References) > 0
}

// SkillsByCategory groups skills preserving first-seen category order.
// Uncategorized skills group under "General".
func SkillsByCategory(skills []Skill) ([]string, map[string][]Skill) {
	order := []string{}
	grouped := map[string][]Skill{}
	for _, s := range skills {
		category := strings.TrimSpace(s.Category)
		if category == "" {
			category = "General"
		}
		if _, seen := grouped[category]; !seen {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], s)
	}
	return order, grouped
}
