package entry

import (
	"fmt"
	"strings"
)

// ModOp is the kind of change a Modification describes.
// The numeric values are the batch-modify codes directory clients expect;
// transports translate them to their own wire encoding.
type ModOp int

const (
	// ModAdd adds a new attribute.
	ModAdd ModOp = 1
	// ModRemove removes an attribute.
	ModRemove ModOp = 2
	// ModReplace replaces all values of an attribute.
	ModReplace ModOp = 3
)

// String returns the string representation of the operation.
func (op ModOp) String() string {
	switch op {
	case ModAdd:
		return "add"
	case ModRemove:
		return "remove"
	case ModReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Modification describes one atomic change to an entry.
type Modification struct {
	// Attribute is the name of the attribute to change.
	Attribute string
	// Values are the new values. They are nil for ModRemove, which removes
	// the whole attribute.
	Values []string
	// Operation is the kind of change.
	Operation ModOp
}

// String renders the modification as "op attr: v1, v2".
func (m Modification) String() string {
	if m.Operation == ModRemove {
		return fmt.Sprintf("%s %s", m.Operation, m.Attribute)
	}
	return fmt.Sprintf("%s %s: %s", m.Operation, m.Attribute, strings.Join(m.Values, ", "))
}
