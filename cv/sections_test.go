package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleModel() Model {
	return Model{
		Personal: Personal{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Summary:  "Engineer with a decade of platform work.",
		},
		Experience: []Experience{{Company: "Acme", Position: "Engineer"}},
		Skills:     []Skill{{Name: "Go"}},
	}
}

func TestVisibleSections_DefaultOrder(t *testing.T) {
	sections := VisibleSections(sampleModel())

	var types []SectionType
	for _, s := range sections {
		types = append(types, s.Type)
	}
	assert.Equal(t, []SectionType{
		SectionSummary, SectionSkills, SectionExperience, SectionEducation,
		SectionProjects, SectionCertifications, SectionLanguages,
		SectionInterests, SectionReferences,
	}, types)
}

func TestVisibleSections_ExplicitListWins(t *testing.T) {
	m := sampleModel()
	m.Sections = []Section{
		{ID: "b", Type: SectionExperience, Visible: true, Order: 2},
		{ID: "a", Type: SectionSkills, Visible: true, Order: 1},
		{ID: "c", Type: SectionSummary, Visible: false, Order: 0},
	}

	sections := VisibleSections(m)
	assert.Len(t, sections, 2)
	assert.Equal(t, SectionSkills, sections[0].Type)
	assert.Equal(t, SectionExperience, sections[1].Type)
}

func TestVisibleSections_OrderTiesBreakOnType(t *testing.T) {
	m := sampleModel()
	m.Sections = []Section{
		{Type: SectionSkills, Visible: true, Order: 5},
		{Type: SectionEducation, Visible: true, Order: 5},
		{Type: SectionExperience, Visible: true, Order: 5},
	}

	sections := VisibleSections(m)
	assert.Equal(t, SectionEducation, sections[0].Type)
	assert.Equal(t, SectionExperience, sections[1].Type)
	assert.Equal(t, SectionSkills, sections[2].Type)
}

func TestVisibleSections_UnknownTypeDropped(t *testing.T) {
	m := sampleModel()
	m.Sections = []Section{
		{Type: SectionType("banner"), Visible: true},
		{Type: SectionSkills, Visible: true},
	}

	sections := VisibleSections(m)
	assert.Len(t, sections, 1)
	assert.Equal(t, SectionSkills, sections[0].Type)
}

func TestVisibleSections_AllHidden(t *testing.T) {
	m := sampleModel()
	m.Sections = []Section{
		{Type: SectionSkills, Visible: false},
		{Type: SectionExperience, Visible: false},
	}
	assert.Empty(t, VisibleSections(m))
}

func TestSectionTitle_ExplicitOverridesDefault(t *testing.T) {
	assert.Equal(t, "Work History", SectionTitle(Section{Type: SectionExperience, Title: "Work History"}))
	assert.Equal(t, "Experience", SectionTitle(Section{Type: SectionExperience}))
	assert.Equal(t, "Experience", SectionTitle(Section{Type: SectionExperience, Title: "   "}))
}

func TestShowReferences(t *testing.T) {
	m := sampleModel()

	// Detailed with no records hides the section.
	m.ReferencesDisplay = ReferencesDetailed
	assert.False(t, ShowReferences(m))

	m.References = []Reference{{Name: "Sam Mentor"}}
	assert.True(t, ShowReferences(m))
	assert.True(t, ReferencesDetailedMode(m))

	// On-request shows the section regardless of records, never detailed.
	m.References = nil
	m.ReferencesDisplay = ReferencesOnRequest
	assert.True(t, ShowReferences(m))
	assert.False(t, ReferencesDetailedMode(m))

	m.References = []Reference{{Name: "Sam Mentor"}}
	assert.False(t, ReferencesDetailedMode(m))
}

func TestHasContent(t *testing.T) {
	m := sampleModel()
	assert.True(t, HasContent(m, SectionSummary))
	assert.True(t, HasContent(m, SectionSkills))
	assert.False(t, HasContent(m, SectionEducation))
	assert.False(t, HasContent(m, SectionReferences))

	m.Personal.Summary = "  "
	assert.False(t, HasContent(m, SectionSummary))
}

func TestSkillsByCategory(t *testing.T) {
	order, grouped := SkillsByCategory([]Skill{
		{Name: "Go", Category: "Backend"},
		{Name: "Figma"},
		{Name: "Postgres", Category: "Backend"},
		{Name: "React", Category: "Frontend"},
	})

	assert.Equal(t, []string{"Backend", "General", "Frontend"}, order)
	assert.Len(t, grouped["Backend"], 2)
	assert.Equal(t, "Figma", grouped["General"][0].Name)
}
