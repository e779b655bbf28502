// Package memdir provides an in-memory directory that implements
// entry.Directory. Each entry is kept as a JSON document of attribute lists
// and modifications are applied to it as RFC 6902 patches.
package memdir

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/KilimcininKorOglu/obaentry/internal/entry"
	"github.com/KilimcininKorOglu/obaentry/internal/logging"
)

// Directory errors.
var (
	// ErrEntryNotFound is returned when an entry is not found.
	ErrEntryNotFound = errors.New("memdir: entry not found")
	// ErrEntryExists is returned when an entry already exists.
	ErrEntryExists = errors.New("memdir: entry already exists")
	// ErrInvalidDN is returned when a DN is empty.
	ErrInvalidDN = errors.New("memdir: invalid DN")
)

// patchOp is a single RFC 6902 operation.
type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// Directory is an in-memory entry.Directory keyed by normalized DN.
// It is safe for concurrent use.
type Directory struct {
	mu      sync.RWMutex
	entries map[string][]byte
	log     logging.Logger
}

// New creates an empty directory. A nil logger disables logging.
func New(log logging.Logger) *Directory {
	if log == nil {
		log = logging.NewNop()
	}
	return &Directory{
		entries: make(map[string][]byte),
		log:     log,
	}
}

// Add creates an entry. The dn attribute is not stored.
func (d *Directory) Add(ctx context.Context, dn string, attributes map[string][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := normalizeDN(dn)
	if key == "" {
		return ErrInvalidDN
	}

	doc := make(map[string][]string, len(attributes))
	for name, values := range attributes {
		name = strings.ToLower(name)
		if name == entry.DNAttribute {
			continue
		}
		doc[name] = append([]string{}, values...)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.entries[key]; ok {
		return ErrEntryExists
	}
	d.entries[key] = data
	d.log.Debug("entry stored", "dn", key, "attributes", len(doc))
	return nil
}

// ModifyBatch applies mods to an entry as one patch. Either every
// modification is applied or none is.
func (d *Directory) ModifyBatch(ctx context.Context, dn string, mods []entry.Modification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := normalizeDN(dn)

	d.mu.Lock()
	defer d.mu.Unlock()

	data, ok := d.entries[key]
	if !ok {
		return ErrEntryNotFound
	}
	if len(mods) == 0 {
		return nil
	}

	var doc map[string][]string
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	ops, err := buildPatch(doc, mods)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		return nil
	}

	raw, err := json.Marshal(ops)
	if err != nil {
		return err
	}
	patch, err := jsonpatch.DecodePatch(raw)
	if err != nil {
		return err
	}
	patched, err := patch.Apply(data)
	if err != nil {
		return err
	}

	d.entries[key] = patched
	d.log.Debug("entry patched", "dn", key, "operations", len(ops))
	return nil
}

// Delete removes an entry.
func (d *Directory) Delete(ctx context.Context, dn string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := normalizeDN(dn)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.entries[key]; !ok {
		return ErrEntryNotFound
	}
	delete(d.entries, key)
	d.log.Debug("entry removed", "dn", key)
	return nil
}

// Read returns a copy of an entry's attributes. Attribute names are lower
// case and the dn attribute is not included.
func (d *Directory) Read(ctx context.Context, dn string) (map[string][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := normalizeDN(dn)

	d.mu.RLock()
	data, ok := d.entries[key]
	d.mu.RUnlock()

	if !ok {
		return nil, ErrEntryNotFound
	}

	var doc map[string][]string
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// buildPatch translates mods into patch operations against doc. doc is
// updated as operations are planned so later modifications see earlier ones.
func buildPatch(doc map[string][]string, mods []entry.Modification) ([]patchOp, error) {
	var ops []patchOp

	for _, m := range mods {
		name := strings.ToLower(m.Attribute)
		if name == entry.DNAttribute {
			return nil, entry.ErrRename
		}
		path := "/" + escapePointer(name)
		current, present := doc[name]

		switch m.Operation {
		case entry.ModAdd:
			if !present {
				if len(m.Values) == 0 {
					continue
				}
				values := dedupe(nil, m.Values)
				ops = append(ops, patchOp{Op: "add", Path: path, Value: values})
				doc[name] = values
				continue
			}
			for _, v := range m.Values {
				if contains(current, v) {
					continue
				}
				ops = append(ops, patchOp{Op: "add", Path: path + "/-", Value: v})
				current = append(current, v)
			}
			doc[name] = current

		case entry.ModReplace:
			if len(m.Values) == 0 {
				if present {
					ops = append(ops, patchOp{Op: "remove", Path: path})
					delete(doc, name)
				}
				continue
			}
			values := dedupe(nil, m.Values)
			ops = append(ops, patchOp{Op: "add", Path: path, Value: values})
			doc[name] = values

		case entry.ModRemove:
			if !present {
				continue
			}
			ops = append(ops, patchOp{Op: "remove", Path: path})
			delete(doc, name)
		}
	}

	return ops, nil
}

func dedupe(dst, values []string) []string {
	for _, v := range values {
		if !contains(dst, v) {
			dst = append(dst, v)
		}
	}
	if dst == nil {
		dst = []string{}
	}
	return dst
}

func contains(values []string, v string) bool {
	for _, have := range values {
		if have == v {
			return true
		}
	}
	return false
}

// escapePointer escapes a JSON pointer reference token.
func escapePointer(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// normalizeDN normalizes a DN for use as a map key.
func normalizeDN(dn string) string {
	return strings.TrimSpace(strings.ToLower(dn))
}
