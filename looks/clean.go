package looks

import (
	"github.com/cvforge/go-cvexport/cv"
)

// clean is the default single-column look: dark headings, thin rules, no
// decoration. It is the documented fallback for unmapped template ids.
type clean struct{}

// NewClean creates the default look.
func NewClean() Look { return clean{} }

func (clean) ID() string { return "clean" }

func (clean) Build(m cv.Model, settings cv.DesignSettings) (*Document, error) {
	settings = settings.Normalize()
	t := tokens{
		Body:       settings.FontSize,
		Heading:    settings.FontSize + 1,
		Entry:      settings.FontSize + 1,
		Text:       RGB{31, 41, 55},
		Muted:      RGB{107, 114, 128},
		Accent:     RGB{17, 24, 39},
		Track:      RGB{229, 231, 235},
		SectionGap: sectionGapFor(settings.Spacing),
		EntryGap:   entryGapFor(settings.Spacing),
		Phone:      formatPhoneSpaced,
	}

	blocks := []Block{Header{
		Name:     cv.Sanitize(m.Personal.FullName),
		Title:    cv.Sanitize(m.Personal.Title),
		Contact:  contactLines(m.Personal, t.Phone),
		TextOn:   t.Text,
		Accent:   t.Muted,
		PadY:     6,
		NameSize: settings.FontSize + 12,
	}}

	for _, s := range cv.VisibleSections(m) {
		blocks = append(blocks, sectionBlocks(m, s, t)...)
	}

	return &Document{
		LookID: "clean",
		Page:   PageA4,
		Margins: Margins{
			Top:    settings.MarginTop,
			Bottom: settings.MarginBottom,
			Left:   settings.MarginLeft,
			Right:  settings.MarginRight,
		},
		Font:   FontSpec{Family: settings.FontFamily, Size: settings.FontSize},
		Blocks: blocks,
	}, nil
}

func sectionGapFor(tier cv.SpacingTier) float64 {
	switch tier {
	case cv.SpacingCompact:
		return 10
	case cv.SpacingRelaxed:
		return 18
	default:
		return 14
	}
}

func entryGapFor(tier cv.SpacingTier) float64 {
	switch tier {
	case cv.SpacingCompact:
		return 5
	case cv.SpacingRelaxed:
		return 10
	default:
		return 7
	}
}
