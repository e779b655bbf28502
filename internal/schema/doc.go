// Package schema describes LDAP object classes and the attributes they
// require.
//
// It carries the built-in object classes from RFC 4519, RFC 2798 and
// RFC 2307 that entries most often use. It answers one question: which
// attributes (MUST) an entry needs for a given set of object classes.
// Superclass chains are followed, so requiring inetOrgPerson also requires
// what person and top require:
//
//	s := schema.Default()
//	required, err := s.Required("inetOrgPerson")
//	// required == []string{"objectClass", "sn", "cn"}
//
// Syntax checking and MAY attributes are not enforced.
package schema
