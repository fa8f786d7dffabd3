package looks

import (
	"github.com/cvforge/go-cvexport/cv"
)

// bannerSidebar is a two-column look: a colored header band, then a sidebar
// (contact, skill bars, languages) next to the main content column.
type bannerSidebar struct{}

// NewBannerSidebar creates the two-column look.
func NewBannerSidebar() Look { return bannerSidebar{} }

func (bannerSidebar) ID() string { return "banner-sidebar" }

// sidebarFrac is the fixed fraction of content width given to the sidebar.
const sidebarFrac = 0.32

func (bannerSidebar) Build(m cv.Model, settings cv.DesignSettings) (*Document, error) {
	settings = settings.Normalize()
	band := RGB{15, 118, 110}
	t := tokens{
		Body:       settings.FontSize,
		Heading:    settings.FontSize + 1,
		Entry:      settings.FontSize + 1,
		Text:       RGB{19, 78, 74},
		Muted:      RGB{95, 116, 112},
		Accent:     band,
		Track:      RGB{204, 251, 241},
		SectionGap: sectionGapFor(settings.Spacing),
		EntryGap:   entryGapFor(settings.Spacing),
		SkillBars:  true,
		Phone:      formatPhoneDashed,
	}

	sidebarTypes := map[cv.SectionType]bool{
		cv.SectionSkills:    true,
		cv.SectionLanguages: true,
	}

	var sidebar, main []Block

	// Contact rows open the sidebar; the band header carries only name+title.
	for _, line := range contactLines(m.Personal, t.Phone) {
		sidebar = append(sidebar, Paragraph{Text: line, Size: t.Body - 1, Color: t.Text, SpaceBy: 3})
	}

	for _, s := range cv.VisibleSections(m) {
		blocks := sectionBlocks(m, s, t)
		if len(blocks) == 0 {
			continue
		}
		if sidebarTypes[s.Type] {
			sidebar = append(sidebar, blocks...)
		} else {
			main = append(main, blocks...)
		}
	}

	sidebarFill := RGB{240, 253, 250}
	blocks := []Block{
		Header{
			Name:     cv.Sanitize(m.Personal.FullName),
			Title:    cv.Sanitize(m.Personal.Title),
			Band:     &band,
			TextOn:   RGB{255, 255, 255},
			Accent:   RGB{204, 251, 241},
			PadY:     14,
			NameSize: settings.FontSize + 12,
		},
		Spacer{Height: 10},
		Columns{
			SidebarFrac: sidebarFrac,
			Gap:         16,
			SidebarFill: &sidebarFill,
			Sidebar:     sidebar,
			Main:        main,
		},
	}

	return &Document{
		LookID: "banner-sidebar",
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
