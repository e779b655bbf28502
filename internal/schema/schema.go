package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by schema lookups.
var (
	// ErrUnknownObjectClass is returned when an object class is not defined.
	ErrUnknownObjectClass = errors.New("schema: unknown object class")
	// ErrSuperiorCycle is returned when a SUP chain loops back on itself.
	ErrSuperiorCycle = errors.New("schema: object class superior cycle")
)

// Schema is a set of object classes keyed by lowercased name.
type Schema struct {
	classes map[string]*ObjectClass
}

// NewSchema creates an empty Schema.
func NewSchema() *Schema {
	return &Schema{classes: make(map[string]*ObjectClass)}
}

// Default returns a Schema populated with the built-in object classes.
func Default() *Schema {
	s := NewSchema()
	for i := range defaultObjectClasses {
		oc := defaultObjectClasses[i]
		s.AddObjectClass(&oc)
	}
	return s
}

// AddObjectClass adds or replaces an object class.
func (s *Schema) AddObjectClass(oc *ObjectClass) {
	s.classes[strings.ToLower(oc.Name)] = oc
}

// GetObjectClass returns the object class with the given name or OID, or nil.
func (s *Schema) GetObjectClass(nameOrOID string) *ObjectClass {
	if oc, ok := s.classes[strings.ToLower(nameOrOID)]; ok {
		return oc
	}
	for _, oc := range s.classes {
		if oc.OID == nameOrOID {
			return oc
		}
	}
	return nil
}

// Required returns the MUST attributes of the given object classes and all
// of their superclasses. Superclass attributes come first, and duplicates
// are dropped (case-insensitively).
func (s *Schema) Required(classes ...string) ([]string, error) {
	var required []string
	seen := make(map[string]bool)

	for _, name := range classes {
		chain, err := s.chain(name)
		if err != nil {
			return nil, err
		}
		for i := len(chain) - 1; i >= 0; i-- {
			for _, attr := range chain[i].Must {
				key := strings.ToLower(attr)
				if seen[key] {
					continue
				}
				seen[key] = true
				required = append(required, attr)
			}
		}
	}

	return required, nil
}

// chain returns the object class followed by its superclasses.
func (s *Schema) chain(name string) ([]*ObjectClass, error) {
	var chain []*ObjectClass
	visited := make(map[string]bool)

	for name != "" {
		oc := s.GetObjectClass(name)
		if oc == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownObjectClass, name)
		}
		key := strings.ToLower(oc.Name)
		if visited[key] {
			return nil, fmt.Errorf("%w: %s", ErrSuperiorCycle, oc.Name)
		}
		visited[key] = true
		chain = append(chain, oc)
		name = oc.Superior
	}

	return chain, nil
}
