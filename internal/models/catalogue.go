package models

import "strings"

// Section is a store department and the articles usually bought there.
type Section struct {
	// Name is the section label (e.g., "Dairy").
	Name string

	// Articles are unique (case-insensitive) and kept sorted case-insensitively.
	Articles []string
}

// Catalogue is the ordered list of sections of the store.
type Catalogue []Section

// Find returns the section with exactly the given name, or nil.
func (c Catalogue) Find(name string) *Section {
	for i := range c {
		if c[i].Name == name {
			return &c[i]
		}
	}
	return nil
}

// HasArticle reports whether the section already lists name, ignoring case.
func (s *Section) HasArticle(name string) bool {
	lower := strings.ToLower(name)
	for _, a := range s.Articles {
		if strings.ToLower(a) == lower {
			return true
		}
	}
	return false
}

// SectionNames returns the names of the sections in catalogue order.
func (c Catalogue) SectionNames() []string {
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name
	}
	return names
}
