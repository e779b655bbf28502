package schema

import "strings"

// ObjectClassKind represents the type of an LDAP object class.
type ObjectClassKind int

const (
	// ObjectClassAbstract represents an abstract object class.
	ObjectClassAbstract ObjectClassKind = iota
	// ObjectClassStructural represents a structural object class.
	ObjectClassStructural
	// ObjectClassAuxiliary represents an auxiliary object class.
	ObjectClassAuxiliary
)

// String returns the string representation of the ObjectClassKind.
func (k ObjectClassKind) String() string {
	switch k {
	case ObjectClassAbstract:
		return "ABSTRACT"
	case ObjectClassStructural:
		return "STRUCTURAL"
	case ObjectClassAuxiliary:
		return "AUXILIARY"
	default:
		return "UNKNOWN"
	}
}

// ObjectClass is an LDAP object class definition.
type ObjectClass struct {
	OID      string
	Name     string
	Superior string
	Kind     ObjectClassKind
	Must     []string
	May      []string
}

// HasMustAttribute checks if the given attribute is required by this object class.
// Attribute names are compared case-insensitively.
func (oc *ObjectClass) HasMustAttribute(attr string) bool {
	for _, must := range oc.Must {
		if strings.EqualFold(must, attr) {
			return true
		}
	}
	return false
}

// AllowsAttribute checks if the given attribute is either MUST or MAY
// for this object class, not counting superclasses.
func (oc *ObjectClass) AllowsAttribute(attr string) bool {
	if oc.HasMustAttribute(attr) {
		return true
	}
	for _, may := range oc.May {
		if strings.EqualFold(may, attr) {
			return true
		}
	}
	return false
}
