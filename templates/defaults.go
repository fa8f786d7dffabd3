package templates

// RegisterDefaults registers the built-in template catalog.
func RegisterDefaults(r *Registry) error {
	for _, t := range []Template{
		NewModern(),
		NewClassic(),
		NewSidebarPro(),
		NewCompact(),
	} {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// NewDefaultRegistry creates a registry pre-loaded with the built-in
// catalog.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	// Registration of the built-ins cannot fail; ids are non-empty constants.
	_ = RegisterDefaults(r)
	return r
}
