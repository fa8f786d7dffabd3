// Package looks is the declarative document look set used by the
// paginated-document export path. Each look is a pure builder from a content
// model to a block tree with explicit numeric spacing; the writer paginates
// that tree into PDF bytes without ever touching a browser.
package looks

import (
	"github.com/cvforge/go-cvexport/cv"
)

// PageSize names the fixed page geometry a look targets. Exactly one per
// look; multi-page overflow belongs to the writer.
type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
)

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

// Margins are page margins in points.
type Margins struct {
	Top, Bottom, Left, Right float64
}

// Document is a fully resolved paginated document: one page geometry plus an
// ordered block list.
type Document struct {
	LookID  string
	Page    PageSize
	Margins Margins
	Font    FontSpec
	Blocks  []Block
}

// FontSpec selects the writer's base font.
type FontSpec struct {
	Family string
	Size   float64
}

// Block is one layout element. The set is closed; the writer dispatches on
// the concrete type.
type Block interface {
	blockKind() string
}

// Header is the name/title/contact banner at the top of the document.
type Header struct {
	Name     string
	Title    string
	Contact  []string
	Band     *RGB // optional full-width background band
	TextOn   RGB
	Accent   RGB
	PadY     float64
	NameSize float64
}

// SectionTitle is a section heading with an underline rule.
type SectionTitle struct {
	Text    string
	Size    float64
	Color   RGB
	Rule    bool
	SpaceBy float64 // vertical gap before the title
}

// Paragraph is body text.
type Paragraph struct {
	Text    string
	Size    float64
	Color   RGB
	Italic  bool
	SpaceBy float64
}

// EntryHead is a left title with a right-aligned aside (typically dates),
// plus an optional secondary line.
type EntryHead struct {
	Primary   string
	Aside     string
	Secondary string
	Size      float64
	Color     RGB
	Muted     RGB
	SpaceBy   float64
}

// Bullets is an indented bullet list.
type Bullets struct {
	Items   []string
	Size    float64
	Color   RGB
	Indent  float64
	SpaceBy float64
}

// KeyValue is a single "key  value" row.
type KeyValue struct {
	Key     string
	Value   string
	Size    float64
	Color   RGB
	Muted   RGB
	SpaceBy float64
}

// SkillBar is a labeled proficiency bar. Level runs 1-5; 0 renders the
// label only.
type SkillBar struct {
	Label   string
	Level   int
	Size    float64
	Color   RGB
	Fill    RGB
	Track   RGB
	SpaceBy float64
}

// Divider is a horizontal rule.
type Divider struct {
	Color   RGB
	SpaceBy float64
}

// Spacer is explicit vertical whitespace.
type Spacer struct {
	Height float64
}

// Columns partitions blocks into a sidebar sized as a fixed fraction of the
// content width, and a main region for the rest.
type Columns struct {
	SidebarFrac float64
	Gap         float64
	SidebarFill *RGB
	Sidebar     []Block
	Main        []Block
}

func (Header) blockKind() string       { return "header" }
func (SectionTitle) blockKind() string { return "section-title" }
func (Paragraph) blockKind() string    { return "paragraph" }
func (EntryHead) blockKind() string    { return "entry-head" }
func (Bullets) blockKind() string      { return "bullets" }
func (KeyValue) blockKind() string     { return "key-value" }
func (SkillBar) blockKind() string     { return "skill-bar" }
func (Divider) blockKind() string      { return "divider" }
func (Spacer) blockKind() string       { return "spacer" }
func (Columns) blockKind() string      { return "columns" }

// Look builds a document from a content model. Builders are pure: no shared
// mutable state, layout constants owned per look.
type Look interface {
	ID() string
	Build(m cv.Model, settings cv.DesignSettings) (*Document, error)
}
