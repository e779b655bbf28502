// Package ldapconn persists entries to an LDAP server with go-ldap.
package ldapconn

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/go-ldap/ldap/v3"

	"github.com/KilimcininKorOglu/obaentry/internal/config"
	"github.com/KilimcininKorOglu/obaentry/internal/entry"
	"github.com/KilimcininKorOglu/obaentry/internal/logging"
)

// Transport errors.
var (
	// ErrEntryNotFound is returned when the server has no entry at the DN.
	ErrEntryNotFound = errors.New("ldapconn: entry not found")
	// ErrNotConnected is returned after Close.
	ErrNotConnected = errors.New("ldapconn: not connected")
)

// Client is the subset of *ldap.Conn used by Transport.
type Client interface {
	Add(*ldap.AddRequest) error
	Modify(*ldap.ModifyRequest) error
	Del(*ldap.DelRequest) error
	Search(*ldap.SearchRequest) (*ldap.SearchResult, error)
}

// Transport implements entry.Directory over an LDAP connection.
// It is safe for concurrent use.
type Transport struct {
	mu     sync.RWMutex
	client Client
	close  func()
	log    logging.Logger

	// RemoveMissingOK makes ModifyBatch retry once, without removals of
	// attributes the entry does not have, when the server rejects the
	// batch with noSuchAttribute.
	RemoveMissingOK bool
}

// New creates a transport over an established client.
func New(client Client, log logging.Logger) *Transport {
	if log == nil {
		log = logging.NewNop()
	}
	return &Transport{
		client:          client,
		log:             log,
		RemoveMissingOK: true,
	}
}

// Dial connects to the server in cfg, upgrades with StartTLS when asked,
// and binds when a bind DN is set.
func Dial(cfg config.LDAPConfig, log logging.Logger) (*Transport, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse ldap url: %w", err)
	}

	tlsConfig := &tls.Config{
		ServerName:         u.Hostname(),
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // opt-in for test servers
	}

	conn, err := ldap.DialURL(cfg.URL,
		ldap.DialWithDialer(&net.Dialer{Timeout: cfg.Timeout}),
		ldap.DialWithTLSConfig(tlsConfig),
	)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.URL, err)
	}
	if cfg.Timeout > 0 {
		conn.SetTimeout(cfg.Timeout)
	}

	if cfg.StartTLS {
		if err := conn.StartTLS(tlsConfig); err != nil {
			conn.Close()
			return nil, fmt.Errorf("start tls: %w", err)
		}
	}

	if cfg.BindDN != "" {
		if err := conn.Bind(cfg.BindDN, cfg.BindPassword); err != nil {
			conn.Close()
			return nil, fmt.Errorf("bind as %s: %w", cfg.BindDN, err)
		}
	}

	t := New(conn, log)
	t.close = func() { conn.Close() }
	t.RemoveMissingOK = cfg.RemoveMissingOK
	t.log.Debug("connected", "url", cfg.URL, "bindDN", cfg.BindDN, "startTLS", cfg.StartTLS)
	return t, nil
}

// Close closes the underlying connection. Later calls fail with
// ErrNotConnected.
func (t *Transport) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.close != nil {
		t.close()
		t.close = nil
	}
	t.client = nil
}

func (t *Transport) conn(ctx context.Context) (Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.client == nil {
		return nil, ErrNotConnected
	}
	return t.client, nil
}

// Add creates an entry. The dn attribute and attributes without values
// are not sent.
func (t *Transport) Add(ctx context.Context, dn string, attributes map[string][]string) error {
	c, err := t.conn(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(attributes))
	for name, values := range attributes {
		if strings.EqualFold(name, entry.DNAttribute) || len(values) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	req := ldap.NewAddRequest(dn, nil)
	for _, name := range names {
		req.Attribute(name, attributes[name])
	}

	t.log.Debug("add request", "dn", dn, "attributes", len(names))
	return mapError(c.Add(req))
}

// ModifyBatch sends mods as a single modify request. An empty batch is
// not sent.
func (t *Transport) ModifyBatch(ctx context.Context, dn string, mods []entry.Modification) error {
	if len(mods) == 0 {
		return ctx.Err()
	}
	c, err := t.conn(ctx)
	if err != nil {
		return err
	}

	req, err := modifyRequest(dn, mods)
	if err != nil {
		return err
	}
	if len(req.Changes) == 0 {
		return nil
	}

	t.log.Debug("modify request", "dn", dn, "changes", len(req.Changes))
	err = c.Modify(req)
	if err == nil || !t.RemoveMissingOK || !ldap.IsErrorWithCode(err, ldap.LDAPResultNoSuchAttribute) {
		return mapError(err)
	}

	present, rerr := t.Read(ctx, dn)
	if rerr != nil {
		return mapError(err)
	}
	kept := dropMissingRemovals(mods, present)
	if len(kept) == len(mods) {
		return mapError(err)
	}

	t.log.Debug("retrying modify without missing removals", "dn", dn, "dropped", len(mods)-len(kept))
	req, err = modifyRequest(dn, kept)
	if err != nil {
		return err
	}
	if len(req.Changes) == 0 {
		return nil
	}
	return mapError(c.Modify(req))
}

// Delete removes an entry.
func (t *Transport) Delete(ctx context.Context, dn string) error {
	c, err := t.conn(ctx)
	if err != nil {
		return err
	}

	t.log.Debug("delete request", "dn", dn)
	return mapError(c.Del(ldap.NewDelRequest(dn, nil)))
}

// Read returns the user attributes of an entry with a base-scope search.
func (t *Transport) Read(ctx context.Context, dn string) (map[string][]string, error) {
	c, err := t.conn(ctx)
	if err != nil {
		return nil, err
	}

	req := ldap.NewSearchRequest(
		dn,
		ldap.ScopeBaseObject,
		ldap.NeverDerefAliases,
		0, 0, false,
		"(objectClass=*)",
		[]string{"*"},
		nil,
	)
	res, err := c.Search(req)
	if err != nil {
		return nil, mapError(err)
	}
	if len(res.Entries) == 0 {
		return nil, ErrEntryNotFound
	}

	m := make(map[string][]string, len(res.Entries[0].Attributes))
	for _, a := range res.Entries[0].Attributes {
		m[a.Name] = append([]string(nil), a.Values...)
	}
	return m, nil
}

// modifyRequest builds a modify request from mods, in order.
func modifyRequest(dn string, mods []entry.Modification) (*ldap.ModifyRequest, error) {
	req := ldap.NewModifyRequest(dn, nil)
	for _, m := range mods {
		if strings.EqualFold(m.Attribute, entry.DNAttribute) {
			return nil, entry.ErrRename
		}
		switch m.Operation {
		case entry.ModAdd:
			if len(m.Values) > 0 {
				req.Add(m.Attribute, m.Values)
			}
		case entry.ModReplace:
			req.Replace(m.Attribute, m.Values)
		case entry.ModRemove:
			req.Delete(m.Attribute, m.Values)
		default:
			return nil, fmt.Errorf("ldapconn: unknown modification %d on %s", int(m.Operation), m.Attribute)
		}
	}
	return req, nil
}

// dropMissingRemovals returns mods without removals of attributes that are
// not in present.
func dropMissingRemovals(mods []entry.Modification, present map[string][]string) []entry.Modification {
	has := make(map[string]bool, len(present))
	for name := range present {
		has[strings.ToLower(name)] = true
	}

	kept := make([]entry.Modification, 0, len(mods))
	for _, m := range mods {
		if m.Operation == entry.ModRemove && !has[strings.ToLower(m.Attribute)] {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func mapError(err error) error {
	if err != nil && ldap.IsErrorWithCode(err, ldap.LDAPResultNoSuchObject) {
		return fmt.Errorf("%w: %v", ErrEntryNotFound, err)
	}
	return err
}
