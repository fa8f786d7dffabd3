package templates

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/goliatone/go-errors"

	"github.com/cvforge/go-cvexport/cv"
)

// htmlTemplate is the shared implementation behind every registered
// template: a pongo2 layout shell plus routing/validation/palette specifics.
type htmlTemplate struct {
	meta     Meta
	shell    *pongo2.Template
	css      string
	sidebar  map[cv.SectionType]bool
	validate func(cv.Model) []string
}

func (t *htmlTemplate) Meta() Meta { return t.meta }

func (t *htmlTemplate) Validate(m cv.Model) []string {
	if t.validate == nil {
		return nil
	}
	return t.validate(m)
}

func (t *htmlTemplate) CSS() string { return t.css }

func (t *htmlTemplate) Render(m cv.Model) (string, error) {
	mainHTML, sideHTML := renderBody(m, t.sidebar)
	out, err := t.shell.Execute(pongo2.Context{
		"template_id": t.meta.ID,
		"name":        cv.Sanitize(m.Personal.FullName),
		"title":       cv.Sanitize(m.Personal.Title),
		"contact":     contactLine(m.Personal),
		"main":        mainHTML,
		"sidebar":     sideHTML,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "template shell execution failed").
			WithTextCode("TEMPLATE_RENDER_FAILED")
	}
	return out, nil
}

// renderBody renders visible sections in order and routes each to the main
// or sidebar slot. Empty renders are dropped before routing.
func renderBody(m cv.Model, sidebar map[cv.SectionType]bool) (string, string) {
	var mainB, sideB strings.Builder
	for _, s := range cv.VisibleSections(m) {
		out := RenderSection(m, s)
		if out == "" {
			continue
		}
		if sidebar != nil && sidebar[s.Type] {
			sideB.WriteString(out)
		} else {
			mainB.WriteString(out)
		}
	}
	return mainB.String(), sideB.String()
}

// contactLine renders the header contact row. All fields are escaped here
// because the shells inject it with |safe.
func contactLine(p cv.Personal) string {
	var parts []string
	add := func(class, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		parts = append(parts, `<span class="cv-contact-`+class+`">`+esc(value)+`</span>`)
	}
	add("email", p.Email)
	add("phone", p.Phone)
	add("address", p.Address)
	add("link", p.Website)
	add("link", p.LinkedIn)
	add("link", p.GitHub)
	return strings.Join(parts, `<span class="cv-sep">·</span>`)
}

func mustShell(src string) *pongo2.Template {
	return pongo2.Must(pongo2.FromString(src))
}

const singleColumnShell = `<div class="cv cv-{{ template_id }}">
<header class="cv-header">
<h1>{{ name }}</h1>
{% if title %}<p class="cv-title">{{ title }}</p>{% endif %}
{% if contact %}<p class="cv-contact">{{ contact|safe }}</p>{% endif %}
</header>
{{ main|safe }}
</div>`

const twoColumnShell = `<div class="cv cv-{{ template_id }}">
<header class="cv-header">
<h1>{{ name }}</h1>
{% if title %}<p class="cv-title">{{ title }}</p>{% endif %}
{% if contact %}<p class="cv-contact">{{ contact|safe }}</p>{% endif %}
</header>
<div class="cv-columns">
{% if sidebar %}<aside class="cv-aside">{{ sidebar|safe }}</aside>{% endif %}
<main class="cv-main">{{ main|safe }}</main>
</div>
</div>`
