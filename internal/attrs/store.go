package attrs

import (
	"sort"
	"strings"
)

// Store is an ordered attribute map. Attribute names are matched
// case-insensitively; the spelling used on first insertion is kept.
// Iteration follows insertion order, and re-setting an existing key keeps
// its position.
//
// The zero value is an empty Store ready to use. A Store is not safe for
// concurrent use.
type Store struct {
	keys   []string
	index  map[string]int
	values map[string]Value
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		index:  make(map[string]int),
		values: make(map[string]Value),
	}
}

// FromMap creates a Store holding a list value for every entry of m.
// Keys are inserted in sorted order.
func FromMap(m map[string][]string) *Store {
	return New().ReplaceAll(m)
}

// normalizeKey returns the lookup form of an attribute name.
func normalizeKey(key string) string {
	return strings.ToLower(key)
}

// Get returns the value stored at key, or null if the key is absent.
func (s *Store) Get(key string) Value {
	v, _ := s.Lookup(key)
	return v
}

// Lookup returns the value stored at key and whether the key is present.
// A present key may still hold null.
func (s *Store) Lookup(key string) (Value, bool) {
	v, ok := s.values[normalizeKey(key)]
	return v, ok
}

// GetIndex returns the i-th value of the attribute at key.
// It returns false if the key is absent or has no value at i.
func (s *Store) GetIndex(key string, i int) (string, bool) {
	v, ok := s.Lookup(key)
	if !ok {
		return "", false
	}
	return v.Index(i)
}

// Has returns true if key is present, even if it holds null.
func (s *Store) Has(key string) bool {
	_, ok := s.values[normalizeKey(key)]
	return ok
}

// HasIndex returns true if key is present and has a value at position i.
func (s *Store) HasIndex(key string, i int) bool {
	_, ok := s.GetIndex(key, i)
	return ok
}

// Count returns the number of top-level keys.
func (s *Store) Count() int {
	return len(s.keys)
}

// Keys returns the attribute names in insertion order.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// All returns a copy of the attribute map keyed by attribute name.
// Mutating the result does not affect the store.
func (s *Store) All() map[string]Value {
	all := make(map[string]Value, len(s.keys))
	for _, k := range s.keys {
		all[k] = s.values[normalizeKey(k)].clone()
	}
	return all
}

// Map returns the normalized, non-null attributes as plain string slices.
func (s *Store) Map() map[string][]string {
	m := make(map[string][]string, len(s.keys))
	for _, k := range s.keys {
		v := s.values[normalizeKey(k)]
		if v.IsNull() {
			continue
		}
		m[k] = v.Values()
	}
	return m
}

// Range calls fn for every attribute in insertion order until fn returns false.
func (s *Store) Range(fn func(key string, v Value) bool) {
	for _, k := range s.keys {
		if !fn(k, s.values[normalizeKey(k)]) {
			return
		}
	}
}

// Set stores v at key, inserting the key if needed.
func (s *Store) Set(key string, v Value) *Store {
	if s.values == nil {
		s.index = make(map[string]int)
		s.values = make(map[string]Value)
	}
	nk := normalizeKey(key)
	if _, ok := s.values[nk]; !ok {
		s.index[nk] = len(s.keys)
		s.keys = append(s.keys, key)
	}
	s.values[nk] = v.clone()
	return s
}

// SetString stores a scalar value at key.
func (s *Store) SetString(key, value string) *Store {
	return s.Set(key, String(value))
}

// SetValues stores a list value at key.
func (s *Store) SetValues(key string, values ...string) *Store {
	return s.Set(key, List(values...))
}

// Clear sets key to null, marking the attribute for removal.
func (s *Store) Clear(key string) *Store {
	return s.Set(key, Null())
}

// Unset removes key from the store entirely.
func (s *Store) Unset(key string) *Store {
	nk := normalizeKey(key)
	i, ok := s.index[nk]
	if !ok {
		return s
	}
	s.keys = append(s.keys[:i], s.keys[i+1:]...)
	delete(s.index, nk)
	delete(s.values, nk)
	for j := i; j < len(s.keys); j++ {
		s.index[normalizeKey(s.keys[j])] = j
	}
	return s
}

// ReplaceAll discards the current contents and stores a list value for
// every entry of m, in sorted key order.
func (s *Store) ReplaceAll(m map[string][]string) *Store {
	s.keys = make([]string, 0, len(m))
	s.index = make(map[string]int, len(m))
	s.values = make(map[string]Value, len(m))

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		s.Set(k, List(m[k]...))
	}
	return s
}

// Prune removes every key holding null.
func (s *Store) Prune() *Store {
	for _, k := range s.Keys() {
		if s.Get(k).IsNull() {
			s.Unset(k)
		}
	}
	return s
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	c := &Store{
		keys:   s.Keys(),
		index:  make(map[string]int, len(s.index)),
		values: make(map[string]Value, len(s.values)),
	}
	for k, i := range s.index {
		c.index[k] = i
	}
	for k, v := range s.values {
		c.values[k] = v.clone()
	}
	return c
}
