// Package entry models a directory entry as two attribute snapshots and
// turns the differences between them into modify operations.
//
// # Snapshots
//
// An Entry loaded from the server holds a raw snapshot (the server state)
// and a current snapshot (the working copy). Callers only ever change the
// working copy:
//
//	e, err := entry.Load(ctx, dir, "cn=alice,ou=users,dc=example,dc=com")
//	if err != nil {
//	    return err
//	}
//	e.SetString("mail", "alice@example.com") // replaced, or added if new
//	e.Clear("description")                   // removed
//	e.SetValues("telephoneNumber", "+1-555-0100", "+1-555-0101")
//
// # Modifications
//
// Modifications walks the working copy in attribute order and emits:
//
//   - ModRemove for an attribute set to null
//   - ModAdd for an attribute the server snapshot does not have
//   - ModReplace for an attribute whose values changed
//
// Attributes that are only in the server snapshot are left alone. Values
// are compared in normalized form, so "x" and ["x"] are the same value.
//
// # Persisting
//
// Save calls Transport.Add for a new entry and Transport.ModifyBatch for an
// existing one. Required attributes are checked first:
//
//	e := entry.New(dir, entry.WithDN(dn), entry.WithRequired("cn", "sn"))
//	if err := e.Save(ctx); err != nil {
//	    var verr *entry.ValidationError
//	    if errors.As(err, &verr) {
//	        // verr.Field is the first missing attribute
//	    }
//	}
//
// Transport errors are returned as they are, and the entry is left exactly
// as it was so the same save can be retried.
package entry
