package entry

import (
	"context"

	"github.com/KilimcininKorOglu/obaentry/internal/attrs"
	"github.com/KilimcininKorOglu/obaentry/internal/logging"
	"github.com/KilimcininKorOglu/obaentry/internal/schema"
)

// DNAttribute is the attribute holding an entry's distinguished name.
const DNAttribute = "dn"

// Transport persists entries to a directory server.
type Transport interface {
	// Add creates a new entry.
	Add(ctx context.Context, dn string, attributes map[string][]string) error
	// ModifyBatch applies modifications to an existing entry, in order.
	ModifyBatch(ctx context.Context, dn string, mods []Modification) error
	// Delete removes an entry.
	Delete(ctx context.Context, dn string) error
}

// Reader reads an entry's attributes from a directory server. Every value
// is returned as a list, even for single-valued attributes.
type Reader interface {
	Read(ctx context.Context, dn string) (map[string][]string, error)
}

// Directory is a Transport that can also read entries.
type Directory interface {
	Transport
	Reader
}

// Entry is a directory entry that tracks changes against the state last
// seen on the server.
//
// The raw snapshot is the server state. The current snapshot is the
// caller's working copy; all mutators act on it. Modifications diffs the
// two, and a successful Save makes raw equal to current again.
//
// Entries are created with New or Load; the zero value is not usable.
// An Entry is not safe for concurrent use.
type Entry struct {
	raw       *attrs.Store
	current   *attrs.Store
	exists    bool
	required  []string
	transport Transport
	schema    *schema.Schema
	log       logging.Logger
}

// Option configures an Entry.
type Option func(*Entry)

// WithAttributes sets the initial working attributes of a new entry.
func WithAttributes(m map[string][]string) Option {
	return func(e *Entry) {
		e.current.ReplaceAll(m)
	}
}

// WithDN sets the dn attribute of a new entry.
func WithDN(dn string) Option {
	return func(e *Entry) {
		e.current.SetString(DNAttribute, dn)
	}
}

// WithRequired declares required attributes.
func WithRequired(names ...string) Option {
	return func(e *Entry) {
		e.SetRequired(names...)
	}
}

// WithLogger sets the logger used for persist operations.
func WithLogger(l logging.Logger) Option {
	return func(e *Entry) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSchema sets the schema used by RequireObjectClasses.
func WithSchema(s *schema.Schema) Option {
	return func(e *Entry) {
		e.schema = s
	}
}

// New creates an entry that does not exist on the server yet.
func New(t Transport, opts ...Option) *Entry {
	e := &Entry{
		raw:       attrs.New(),
		current:   attrs.New(),
		transport: t,
		log:       logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Hydrate replaces both snapshots with attributes read from the server and
// marks the entry as existing.
func (e *Entry) Hydrate(m map[string][]string) *Entry {
	e.raw.ReplaceAll(m)
	e.current = e.raw.Clone()
	e.exists = true
	return e
}

// Exists returns true if the entry was loaded from, or saved to, the server.
func (e *Entry) Exists() bool {
	return e.exists
}

// DN returns the entry's distinguished name, preferring the working copy.
func (e *Entry) DN() string {
	if v, ok := e.current.Lookup(DNAttribute); ok && !v.IsNull() {
		return v.First()
	}
	return e.raw.Get(DNAttribute).First()
}

// serverDN returns the DN the server knows the entry by.
func (e *Entry) serverDN() string {
	if dn := e.raw.Get(DNAttribute).First(); e.exists && dn != "" {
		return dn
	}
	return e.DN()
}

// SetDN sets the dn attribute on the working copy.
func (e *Entry) SetDN(dn string) *Entry {
	e.current.SetString(DNAttribute, dn)
	return e
}

// Get returns the current value of an attribute, or null if absent.
func (e *Entry) Get(name string) attrs.Value {
	return e.current.Get(name)
}

// GetIndex returns the i-th current value of an attribute.
func (e *Entry) GetIndex(name string, i int) (string, bool) {
	return e.current.GetIndex(name, i)
}

// Has returns true if the attribute is present in the working copy.
func (e *Entry) Has(name string) bool {
	return e.current.Has(name)
}

// HasIndex returns true if the attribute has a current value at position i.
func (e *Entry) HasIndex(name string, i int) bool {
	return e.current.HasIndex(name, i)
}

// Set stores a value in the working copy.
func (e *Entry) Set(name string, v attrs.Value) *Entry {
	e.current.Set(name, v)
	return e
}

// SetString stores a scalar value in the working copy.
func (e *Entry) SetString(name, value string) *Entry {
	e.current.SetString(name, value)
	return e
}

// SetValues stores a list value in the working copy.
func (e *Entry) SetValues(name string, values ...string) *Entry {
	e.current.SetValues(name, values...)
	return e
}

// Clear sets an attribute to null so that the next save removes it.
func (e *Entry) Clear(name string) *Entry {
	e.current.Clear(name)
	return e
}

// Unset drops an attribute from the working copy without removing it on
// the server. If raw has the attribute, it is simply no longer tracked
// until the next hydrate.
func (e *Entry) Unset(name string) *Entry {
	e.current.Unset(name)
	return e
}

// Attributes returns a copy of the working attributes.
func (e *Entry) Attributes() map[string]attrs.Value {
	return e.current.All()
}

// Count returns the number of working attributes.
func (e *Entry) Count() int {
	return e.current.Count()
}

// Current returns a copy of the working snapshot.
func (e *Entry) Current() *attrs.Store {
	return e.current.Clone()
}

// Raw returns a copy of the server snapshot.
func (e *Entry) Raw() *attrs.Store {
	return e.raw.Clone()
}

// Modifications returns the changes needed to bring the server in line
// with the working copy.
func (e *Entry) Modifications() []Modification {
	return Diff(e.raw, e.current)
}

// IsDirty returns true if the working copy differs from the server snapshot.
func (e *Entry) IsDirty() bool {
	return len(e.Modifications()) > 0
}

// sync records a successful persist: null attributes are dropped from the
// working copy and raw becomes a copy of it.
func (e *Entry) sync() {
	e.current.Prune()
	e.raw = e.current.Clone()
	e.exists = true
}
