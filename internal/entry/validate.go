package entry

import (
	"strings"

	"github.com/KilimcininKorOglu/obaentry/internal/schema"
)

// SetRequired replaces the set of attributes that must be non-null before
// the entry is saved.
func (e *Entry) SetRequired(names ...string) *Entry {
	e.required = append([]string(nil), names...)
	return e
}

// Required returns the declared required attributes.
func (e *Entry) Required() []string {
	return append([]string(nil), e.required...)
}

// RequireObjectClasses adds the MUST attributes of the given object classes
// to the required set.
func (e *Entry) RequireObjectClasses(classes ...string) error {
	s := e.schema
	if s == nil {
		s = schema.Default()
	}

	names, err := s.Required(classes...)
	if err != nil {
		return err
	}
	for _, name := range names {
		if !e.isRequired(name) {
			e.required = append(e.required, name)
		}
	}
	return nil
}

// ValidateRequired checks that required attributes are non-null and
// returns a *ValidationError for the first one that is not.
//
// Without arguments every required attribute is checked. With arguments,
// only the named attributes that are also required are checked; names that
// were never declared required are ignored.
func (e *Entry) ValidateRequired(only ...string) error {
	names := e.required
	if len(only) > 0 {
		names = nil
		for _, name := range only {
			if e.isRequired(name) {
				names = append(names, name)
			}
		}
	}

	for _, name := range names {
		if e.current.Get(name).IsNull() {
			return &ValidationError{Field: name}
		}
	}
	return nil
}

func (e *Entry) isRequired(name string) bool {
	for _, r := range e.required {
		if strings.EqualFold(r, name) {
			return true
		}
	}
	return false
}
