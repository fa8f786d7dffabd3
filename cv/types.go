package cv

// SectionType identifies one of the fixed content section kinds.
type SectionType string

const (
	SectionSummary        SectionType = "summary"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionLanguages      SectionType = "languages"
	SectionInterests      SectionType = "interests"
	SectionReferences     SectionType = "references"
)

// Valid reports whether t is a known section type.
func (t SectionType) Valid() bool {
	switch t {
	case SectionSummary, SectionExperience, SectionEducation, SectionSkills,
		SectionProjects, SectionCertifications, SectionLanguages,
		SectionInterests, SectionReferences:
		return true
	}
	return false
}

// ReferencesDisplay governs how the references section renders.
type ReferencesDisplay string

const (
	ReferencesDetailed  ReferencesDisplay = "detailed"
	ReferencesOnRequest ReferencesDisplay = "available-on-request"
)

// SpacingTier selects vertical density for rendered documents.
type SpacingTier string

const (
	SpacingCompact SpacingTier = "compact"
	SpacingNormal  SpacingTier = "normal"
	SpacingRelaxed SpacingTier = "relaxed"
)

// Section is one named, orderable, independently visible content block.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Title   string      `json:"title,omitempty"`
	Visible bool        `json:"visible"`
	Order   int         `json:"order"`
}

// Personal holds identity and contact fields. FullName and Email are the
// minimum required for any export.
type Personal struct {
	FullName string `json:"fullName" validate:"required"`
	Title    string `json:"title,omitempty"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Experience is one employment entry.
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is one study entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skill is one skill with optional categorical grouping and a 1-5
// proficiency level. Level 0 means "not rated".
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    int    `json:"level,omitempty" validate:"gte=0,lte=5"`
}

// Project is one portfolio entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// Certification is one credential entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Language is one spoken-language entry.
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Reference is one professional reference record.
type Reference struct {
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Company  string `json:"company,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Relation string `json:"relation,omitempty"`
}

// DesignSettings tune the paginated-document looks. Zero values fall back to
// the documented defaults, see DefaultDesignSettings.
type DesignSettings struct {
	MarginTop    float64     `json:"marginTop,omitempty"`
	MarginBottom float64     `json:"marginBottom,omitempty"`
	MarginLeft   float64     `json:"marginLeft,omitempty"`
	MarginRight  float64     `json:"marginRight,omitempty"`
	Spacing      SpacingTier `json:"spacing,omitempty"`
	FontFamily   string      `json:"fontFamily,omitempty"`
	FontSize     float64     `json:"fontSize,omitempty"`
}

// DefaultDesignSettings returns the documented defaults used when a model
// carries no design settings. Margins and font size are in points.
func DefaultDesignSettings() DesignSettings {
	return DesignSettings{
		MarginTop:    40,
		MarginBottom: 40,
		MarginLeft:   44,
		MarginRight:  44,
		Spacing:      SpacingNormal,
		FontFamily:   "Helvetica",
		FontSize:     10,
	}
}

// Normalize fills zero-value fields with the documented defaults.
func (d DesignSettings) Normalize() DesignSettings {
	defaults := DefaultDesignSettings()
	if d.MarginTop <= 0 {
		d.MarginTop = defaults.MarginTop
	}
	if d.MarginBottom <= 0 {
		d.MarginBottom = defaults.MarginBottom
	}
	if d.MarginLeft <= 0 {
		d.MarginLeft = defaults.MarginLeft
	}
	if d.MarginRight <= 0 {
		d.MarginRight = defaults.MarginRight
	}
	if d.Spacing == "" {
		d.Spacing = defaults.Spacing
	}
	if d.FontFamily == "" {
		d.FontFamily = defaults.FontFamily
	}
	if d.FontSize <= 0 {
		d.FontSize = defaults.FontSize
	}
	return d
}

// Model is the normalized personal/career data driving every render.
type Model struct {
	Personal          Personal          `json:"personal" validate:"required"`
	Sections          []Section         `json:"sections,omitempty"`
	Experience        []Experience      `json:"experience,omitempty"`
	Education         []Education       `json:"education,omitempty"`
	Skills            []Skill           `json:"skills,omitempty" validate:"dive"`
	Projects          []Project         `json:"projects,omitempty"`
	Certifications    []Certification   `json:"certifications,omitempty"`
	Languages         []Language        `json:"languages,omitempty"`
	Interests         []string          `json:"interests,omitempty"`
	References        []Reference       `json:"references,omitempty"`
	ReferencesDisplay ReferencesDisplay `json:"referencesDisplay,omitempty"`
	DesignSettings    *DesignSettings   `json:"designSettings,omitempty"`
	Locale            string            `json:"locale,omitempty"`
}

// Design returns the model's design settings with defaults applied.
func (m Model) Design() DesignSettings {
	if m.DesignSettings == nil {
		return DefaultDesignSettings()
	}
	return m.DesignSettings.Normalize()
}
