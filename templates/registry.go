package templates

import (
	"sync"

	"github.com/goliatone/go-errors"

	"github.com/cvforge/go-cvexport/cv"
)

// Registry stores templates keyed by id. Registering an id twice replaces
// the prior entry; catalogs are rebuilt at process start so replacement is
// the useful behavior, not an error.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Template
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Template)}
}

// Register adds or replaces a template.
func (r *Registry) Register(t Template) error {
	if t == nil {
		return errors.New("template is required", errors.CategoryValidation).
			WithTextCode("TEMPLATE_REQUIRED")
	}
	id := t.Meta().ID
	if id == "" {
		return errors.New("template id is required", errors.CategoryValidation).
			WithTextCode("TEMPLATE_ID_REQUIRED")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[id]; !exists {
		r.order = append(r.order, id)
	}
	r.items[id] = t
	return nil
}

// Get returns the template for id.
func (r *Registry) Get(id string) (Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.items[id]
	return t, ok
}

// List returns all templates in registration order.
func (r *Registry) List() []Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Template, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// ByCategory returns templates tagged with the category, preserving
// registration order.
func (r *Registry) ByCategory(category string) []Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Template
	for _, id := range r.order {
		t := r.items[id]
		for _, tag := range t.Meta().Categories {
			if tag == category {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// Session holds the caller's current template selection. Each caller owns
// its own session, so selections never interleave across requests.
type Session struct {
	registry *Registry
	current  Template
}

// NewSession creates a session with no template selected.
func NewSession(registry *Registry) *Session {
	return &Session{registry: registry}
}

// Select sets the current template. It returns false and leaves the
// selection unchanged when the id is unknown.
func (s *Session) Select(id string) bool {
	if s.registry == nil {
		return false
	}
	t, ok := s.registry.Get(id)
	if !ok {
		return false
	}
	s.current = t
	return true
}

// Current returns the selected template, if any.
func (s *Session) Current() (Template, bool) {
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

// Render delegates to the current template.
func (s *Session) Render(m cv.Model) (string, error) {
	if s.current == nil {
		return "", errNoSelection()
	}
	return s.current.Render(m)
}

// Validate delegates to the current template.
func (s *Session) Validate(m cv.Model) ([]string, error) {
	if s.current == nil {
		return nil, errNoSelection()
	}
	return s.current.Validate(m), nil
}

// CSS delegates to the current template.
func (s *Session) CSS() (string, error) {
	if s.current == nil {
		return "", errNoSelection()
	}
	return s.current.CSS(), nil
}

func errNoSelection() error {
	return errors.New("no template selected", errors.CategoryOperation).
		WithTextCode("TEMPLATE_NOT_SELECTED")
}
