// Package templates is the catalog of visual CV templates. Every template
// turns one content model into semantic markup plus a stylesheet; section
// ordering and visibility are shared across templates and resolved by the cv
// package.
package templates

import (
	"github.com/cvforge/go-cvexport/cv"
)

// Layout describes the template's overall column arrangement. It is
// descriptive metadata; enforcement happens in each template's shell.
type Layout string

const (
	LayoutSingleColumn Layout = "single-column"
	LayoutTwoColumn    Layout = "two-column"
	LayoutMixed        Layout = "mixed"
)

// Structure is descriptive template metadata surfaced to catalogs and the
// stylesheet generator.
type Structure struct {
	SectionOrder []cv.SectionType
	Layout       Layout
	ColorScheme  string
	FontPairing  string
	Spacing      cv.SpacingTier
}

// Meta identifies a template in the catalog. Popularity is cosmetic.
type Meta struct {
	ID          string
	Name        string
	Description string
	Categories  []string
	Popularity  int
	Structure   Structure
}

// Template is a registered strategy for validating, rendering and styling a
// content model.
type Template interface {
	Meta() Meta
	// Validate returns advisory findings for the template's target audience.
	// It never mutates the model and never blocks rendering.
	Validate(m cv.Model) []string
	// Render produces the template's markup for the model.
	Render(m cv.Model) (string, error)
	// CSS returns the template's stylesheet.
	CSS() string
}
