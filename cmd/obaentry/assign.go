package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ldap/ldap/v3"

	"github.com/KilimcininKorOglu/obaentry/internal/entry"
)

var (
	errBadAssignment = errors.New("bad assignment")
	errBadDN         = errors.New("bad dn")
)

// checkDN rejects empty and malformed distinguished names.
func checkDN(dn string) error {
	if strings.TrimSpace(dn) == "" {
		return fmt.Errorf("%w: empty dn", errBadDN)
	}
	if _, err := ldap.ParseDN(dn); err != nil {
		return fmt.Errorf("%w: %q: %v", errBadDN, dn, err)
	}
	return nil
}

// assignment is one attr=value, attr= or attr! argument.
type assignment struct {
	Attribute string
	Value     string
	Clear     bool
}

func parseAssignment(arg string) (assignment, error) {
	if name, ok := strings.CutSuffix(arg, "!"); ok && !strings.Contains(name, "=") {
		if err := checkAttributeName(name); err != nil {
			return assignment{}, err
		}
		return assignment{Attribute: name, Clear: true}, nil
	}

	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return assignment{}, fmt.Errorf("%w: %q: expected attr=value, attr= or attr!", errBadAssignment, arg)
	}
	if err := checkAttributeName(name); err != nil {
		return assignment{}, err
	}
	if value == "" {
		return assignment{Attribute: name, Clear: true}, nil
	}
	return assignment{Attribute: name, Value: value}, nil
}

func parseAssignments(args []string) ([]assignment, error) {
	res := make([]assignment, 0, len(args))
	for _, arg := range args {
		a, err := parseAssignment(arg)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}

// checkAttributeName accepts attribute descriptions: a name or OID with
// optional ;options.
func checkAttributeName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty attribute name", errBadAssignment)
	}
	if strings.EqualFold(name, entry.DNAttribute) {
		return fmt.Errorf("%w: the dn cannot be assigned", errBadAssignment)
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9', r == '-', r == '.', r == ';':
			if i == 0 && (r == '-' || r == ';') {
				return fmt.Errorf("%w: invalid attribute name %q", errBadAssignment, name)
			}
		default:
			return fmt.Errorf("%w: invalid attribute name %q", errBadAssignment, name)
		}
	}
	return nil
}

// applyAssignments sets attributes on e. Values for the same attribute
// accumulate into a list, and a clear discards what came before it.
func applyAssignments(e *entry.Entry, assigns []assignment) {
	type pending struct {
		name   string
		values []string
	}
	var order []*pending
	byName := make(map[string]*pending)

	for _, a := range assigns {
		key := strings.ToLower(a.Attribute)
		p, ok := byName[key]
		if !ok {
			p = &pending{name: a.Attribute}
			byName[key] = p
			order = append(order, p)
		}
		if a.Clear {
			p.values = nil
			continue
		}
		p.values = append(p.values, a.Value)
	}

	for _, p := range order {
		switch len(p.values) {
		case 0:
			e.Clear(p.name)
		case 1:
			e.SetString(p.name, p.values[0])
		default:
			e.SetValues(p.name, p.values...)
		}
	}
}
