package looks

import (
	"sync"

	"github.com/goliatone/go-errors"
	"gopkg.in/yaml.v3"
)

// DefaultLookID is the documented fallback for unmapped template ids.
const DefaultLookID = "clean"

// Mapping translates template ids (or raw style names) into look ids. It is
// total by construction: unknown ids resolve to the default look.
type Mapping struct {
	mu       sync.RWMutex
	table    map[string]string
	fallback string
}

// NewMapping creates the built-in template-to-look table.
func NewMapping() *Mapping {
	return &Mapping{
		table: map[string]string{
			"modern":      "clean",
			"classic":     "clean",
			"compact":     "clean",
			"sidebar-pro": "banner-sidebar",
		},
		fallback: DefaultLookID,
	}
}

// Resolve returns the look id for a template id, falling back to the default
// look for unknown ids. It never fails.
func (m *Mapping) Resolve(templateID string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if lookID, ok := m.table[templateID]; ok {
		return lookID
	}
	return m.fallback
}

// Set adds or replaces one mapping entry.
func (m *Mapping) Set(templateID, lookID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.table[templateID] = lookID
}

type mappingFile struct {
	Default string            `yaml:"default"`
	Looks   map[string]string `yaml:"looks"`
}

// LoadYAML merges mapping overrides from a YAML document of the form:
//
//	default: clean
//	looks:
//	  sidebar-pro: banner-sidebar
func (m *Mapping) LoadYAML(data []byte) error {
	var file mappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "look mapping YAML is malformed").
			WithTextCode("LOOK_MAPPING_MALFORMED")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if file.Default != "" {
		m.fallback = file.Default
	}
	for templateID, lookID := range file.Looks {
		if templateID == "" || lookID == "" {
			continue
		}
		m.table[templateID] = lookID
	}
	return nil
}

// Set is the look catalog plus its template-id mapping.
type Set struct {
	mu      sync.RWMutex
	looks   map[string]Look
	mapping *Mapping
}

// NewSet creates a set pre-loaded with the built-in looks and mapping.
func NewSet() *Set {
	s := &Set{
		looks:   make(map[string]Look),
		mapping: NewMapping(),
	}
	s.Register(NewClean())
	s.Register(NewBannerSidebar())
	return s
}

// Register adds or replaces a look.
func (s *Set) Register(look Look) {
	if look == nil || look.ID() == "" {
		return
	}
	s.mu.Lock()
	s.looks[look.ID()] = look
	s.mu.Unlock()
}

// Mapping exposes the template-id mapping for overrides.
func (s *Set) Mapping() *Mapping { return s.mapping }

// ForTemplate resolves a template id to a look, never failing: unmapped ids
// and unregistered looks both land on the default look.
func (s *Set) ForTemplate(templateID string) Look {
	lookID := s.mapping.Resolve(templateID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if look, ok := s.looks[lookID]; ok {
		return look
	}
	return s.looks[DefaultLookID]
}
