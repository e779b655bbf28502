// Package attrs provides the attribute store used to model directory entries.
package attrs

import (
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// kind tags the shape of a Value.
type kind int

const (
	kindNull kind = iota
	kindScalar
	kindList
)

// Value is a single attribute value: null, a scalar string, or an ordered
// list of strings. Directory attributes are multi-valued, so a scalar is
// treated as a one-element list wherever values are compared or sent.
//
// The zero Value is null.
type Value struct {
	kind kind
	vals []string
}

// Null returns the null value. Assigning it to an attribute marks the
// attribute for removal.
func Null() Value {
	return Value{}
}

// String returns a scalar value.
func String(s string) Value {
	return Value{kind: kindScalar, vals: []string{s}}
}

// List returns a list value holding a copy of vals. A nil or empty vals
// yields an empty list, not null.
func List(vals ...string) Value {
	cp := make([]string, len(vals))
	copy(cp, vals)
	return Value{kind: kindList, vals: cp}
}

// IsNull returns true if the value is null.
func (v Value) IsNull() bool {
	return v.kind == kindNull
}

// IsScalar returns true if the value was set as a single string.
func (v Value) IsScalar() bool {
	return v.kind == kindScalar
}

// IsList returns true if the value was set as a list.
func (v Value) IsList() bool {
	return v.kind == kindList
}

// Values returns the normalized form of the value: a scalar becomes a
// one-element slice, a list is copied and null yields nil.
func (v Value) Values() []string {
	if v.kind == kindNull {
		return nil
	}
	cp := make([]string, len(v.vals))
	copy(cp, v.vals)
	return cp
}

// First returns the first value, or an empty string if there is none.
func (v Value) First() string {
	if len(v.vals) == 0 {
		return ""
	}
	return v.vals[0]
}

// Len returns the number of values. Null has zero values.
func (v Value) Len() int {
	return len(v.vals)
}

// Index returns the value at position i.
// A scalar is indexable at position 0.
func (v Value) Index(i int) (string, bool) {
	if i < 0 || i >= len(v.vals) {
		return "", false
	}
	return v.vals[i], true
}

// Equal reports whether two values are structurally equal. Values are
// compared in normalized form, so a scalar equals a one-element list with
// the same content. Null only equals null.
func (v Value) Equal(o Value) bool {
	if v.IsNull() || o.IsNull() {
		return v.IsNull() == o.IsNull()
	}
	return cmp.Equal(v.vals, o.vals, cmpopts.EquateEmpty())
}

// clone returns a deep copy of the value.
func (v Value) clone() Value {
	if v.vals == nil {
		return Value{kind: v.kind}
	}
	return Value{kind: v.kind, vals: v.Values()}
}

// String returns a human readable form of the value.
func (v Value) String() string {
	switch v.kind {
	case kindNull:
		return "<null>"
	case kindScalar:
		return v.vals[0]
	default:
		return "[" + strings.Join(v.vals, ", ") + "]"
	}
}
