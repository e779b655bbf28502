package entry

import (
	"context"
	"strings"

	"github.com/KilimcininKorOglu/obaentry/internal/logging"
)

// Load reads dn from dir and returns a hydrated entry that persists
// through dir. The dn attribute is added when the reader did not return it.
func Load(ctx context.Context, dir Directory, dn string, opts ...Option) (*Entry, error) {
	m, err := dir.Read(ctx, dn)
	if err != nil {
		return nil, err
	}

	hasDN := false
	for k := range m {
		if strings.EqualFold(k, DNAttribute) {
			hasDN = true
			break
		}
	}
	if !hasDN {
		withDN := make(map[string][]string, len(m)+1)
		for k, v := range m {
			withDN[k] = v
		}
		withDN[DNAttribute] = []string{dn}
		m = withDN
	}

	e := New(dir, opts...)
	return e.Hydrate(m), nil
}

// Save creates the entry if it does not exist yet and updates it otherwise.
func (e *Entry) Save(ctx context.Context) error {
	if e.exists {
		return e.Update(ctx)
	}
	return e.Create(ctx)
}

// Create adds the entry to the directory with its non-null working
// attributes. Transport errors are returned unchanged and leave the entry
// untouched.
func (e *Entry) Create(ctx context.Context) error {
	if e.transport == nil {
		return ErrNoTransport
	}
	if err := e.ValidateRequired(); err != nil {
		return err
	}

	dn := e.DN()
	log := e.requestLogger(dn)
	attributes := e.current.Map()

	log.Debug("adding entry", "attributes", len(attributes))
	if err := e.transport.Add(ctx, dn, attributes); err != nil {
		log.Warn("add failed", "error", err)
		return err
	}

	e.sync()
	log.Info("entry added")
	return nil
}

// Update sends the entry's modifications to the directory. The transport
// is called even when there is nothing to change. Transport errors are
// returned unchanged and leave the entry untouched, so the same update can
// be retried.
func (e *Entry) Update(ctx context.Context) error {
	if e.transport == nil {
		return ErrNoTransport
	}
	if err := e.ValidateRequired(); err != nil {
		return err
	}

	dn := e.serverDN()
	log := e.requestLogger(dn)
	mods := e.Modifications()

	for _, m := range mods {
		log.Debug("modification", "change", m.String())
	}
	if err := e.transport.ModifyBatch(ctx, dn, mods); err != nil {
		log.Warn("modify failed", "changes", len(mods), "error", err)
		return err
	}

	e.sync()
	log.Info("entry modified", "changes", len(mods))
	return nil
}

// Delete removes the entry from the directory. On success the entry no
// longer exists and its server snapshot is cleared; the working copy is
// kept so the entry can be re-created.
func (e *Entry) Delete(ctx context.Context) error {
	if e.transport == nil {
		return ErrNoTransport
	}
	if !e.exists {
		return ErrNotPersisted
	}

	dn := e.serverDN()
	log := e.requestLogger(dn)

	if err := e.transport.Delete(ctx, dn); err != nil {
		log.Warn("delete failed", "error", err)
		return err
	}

	e.raw.ReplaceAll(nil)
	e.exists = false
	log.Info("entry deleted")
	return nil
}

func (e *Entry) requestLogger(dn string) logging.Logger {
	return e.log.WithRequestID(logging.GenerateRequestID()).WithFields("dn", dn)
}
