// Package password hashes userPassword values and checks cleartext
// passwords against a complexity policy before they are sent to the server.
//
// Stored values use the {SCHEME}encoded form understood by OpenLDAP and
// most other directory servers:
//
//	{SSHA}     salted SHA-1, base64(hash || salt)
//	{SSHA256}  salted SHA-256, base64(hash || salt)
//	{SSHA512}  salted SHA-512, base64(hash || salt)
//	{ARGON2}   argon2id in PHC string format
//	{CLEARTEXT} the password itself
//
// Hashing a password:
//
//	stored, err := password.Hash("s3cret!", password.SchemeSSHA256)
//	if err != nil {
//	    return err
//	}
//	e.SetString(password.Attribute, stored)
package password
