package password

import (
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // {SSHA} is still the most widely deployed scheme
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Attribute is the standard LDAP attribute name for user passwords.
const Attribute = "userPassword"

// Password scheme prefixes.
const (
	SchemeSSHA      = "{SSHA}"
	SchemeSSHA256   = "{SSHA256}"
	SchemeSSHA512   = "{SSHA512}"
	SchemeArgon2    = "{ARGON2}"
	SchemeCleartext = "{CLEARTEXT}"
)

// DefaultScheme is used when no scheme is configured.
const DefaultScheme = SchemeSSHA256

const saltLength = 16

// argon2id parameters, matching the OpenLDAP pw-argon2 defaults.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 1
	argonKeyLen  = 32

	// maxArgonMemory caps the memory cost accepted from stored values, in KiB.
	maxArgonMemory = 1 << 22
)

// Errors.
var (
	// ErrUnsupportedScheme is returned for an unknown scheme.
	ErrUnsupportedScheme = errors.New("password: unsupported scheme")
	// ErrInvalidFormat is returned when a stored value cannot be decoded.
	ErrInvalidFormat = errors.New("password: invalid stored password format")
	// ErrMismatch is returned when a password does not match.
	ErrMismatch = errors.New("password: mismatch")
)

// Schemes returns the supported schemes.
func Schemes() []string {
	return []string{SchemeSSHA, SchemeSSHA256, SchemeSSHA512, SchemeArgon2, SchemeCleartext}
}

// NormalizeScheme returns the canonical form of scheme, accepting names
// with or without braces in any case.
func NormalizeScheme(scheme string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(scheme))
	if s == "" {
		return DefaultScheme, nil
	}
	if !strings.HasPrefix(s, "{") {
		s = "{" + s + "}"
	}
	for _, known := range Schemes() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
}

// IsHashed returns true if value already carries a {SCHEME} prefix.
func IsHashed(value string) bool {
	end := strings.IndexByte(value, '}')
	return strings.HasPrefix(value, "{") && end > 1
}

// Hash returns plaintext hashed with scheme.
func Hash(plaintext, scheme string) (string, error) {
	scheme, err := NormalizeScheme(scheme)
	if err != nil {
		return "", err
	}

	switch scheme {
	case SchemeCleartext:
		return SchemeCleartext + plaintext, nil
	case SchemeArgon2:
		salt, err := newSalt()
		if err != nil {
			return "", err
		}
		return SchemeArgon2 + encodeArgon2(plaintext, salt, argonTime, argonMemory, argonThreads), nil
	}

	salt, err := newSalt()
	if err != nil {
		return "", err
	}
	return scheme + saltedDigest(newHash(scheme), plaintext, salt), nil
}

// Verify checks plaintext against a stored value. A value without a
// scheme prefix is compared as cleartext.
func Verify(plaintext, stored string) error {
	if !IsHashed(stored) {
		return compare([]byte(plaintext), []byte(stored))
	}

	scheme, encoded := splitScheme(stored)
	switch scheme {
	case SchemeCleartext:
		return compare([]byte(plaintext), []byte(encoded))
	case SchemeArgon2:
		params, err := parseArgon2(encoded)
		if err != nil {
			return err
		}
		got := argon2.IDKey([]byte(plaintext), params.salt, params.time, params.memory, params.threads, uint32(len(params.key)))
		return compare(got, params.key)
	case SchemeSSHA, SchemeSSHA256, SchemeSSHA512:
		h := newHash(scheme)
		digest, salt, err := decodeSalted(h, encoded)
		if err != nil {
			return err
		}
		h.Write([]byte(plaintext))
		h.Write(salt)
		return compare(h.Sum(nil), digest)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
}

// CheckFormat reports whether a pre-hashed value of a supported scheme can
// be decoded. Values of other schemes are not checked.
func CheckFormat(stored string) error {
	if !IsHashed(stored) {
		return nil
	}

	scheme, encoded := splitScheme(stored)
	switch scheme {
	case SchemeArgon2:
		_, err := parseArgon2(encoded)
		return err
	case SchemeSSHA, SchemeSSHA256, SchemeSSHA512:
		_, _, err := decodeSalted(newHash(scheme), encoded)
		return err
	}
	return nil
}

func splitScheme(stored string) (scheme, encoded string) {
	end := strings.IndexByte(stored, '}')
	return strings.ToUpper(stored[:end+1]), stored[end+1:]
}

func newHash(scheme string) hash.Hash {
	switch scheme {
	case SchemeSSHA:
		return sha1.New() //nolint:gosec
	case SchemeSSHA512:
		return sha512.New()
	default:
		return sha256.New()
	}
}

// saltedDigest returns base64(H(plaintext || salt) || salt).
func saltedDigest(h hash.Hash, plaintext string, salt []byte) string {
	h.Write([]byte(plaintext))
	h.Write(salt)
	sum := h.Sum(nil)

	data := make([]byte, 0, len(sum)+len(salt))
	data = append(data, sum...)
	data = append(data, salt...)
	return base64.StdEncoding.EncodeToString(data)
}

// encodeArgon2 returns $argon2id$v=19$m=..,t=..,p=..$salt$key.
func encodeArgon2(plaintext string, salt []byte, t, m uint32, p uint8) string {
	key := argon2.IDKey([]byte(plaintext), salt, t, m, p, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, m, t, p,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
}

type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

// parseArgon2 decodes $argon2id$v=19$m=..,t=..,p=..$salt$key. Parameters
// that argon2 would reject or that need more than maxArgonMemory KiB are
// invalid.
func parseArgon2(encoded string) (argon2Params, error) {
	var params argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" || parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return params, ErrInvalidFormat
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, ErrInvalidFormat
	}
	if params.time < 1 || params.threads < 1 ||
		params.memory < 8*uint32(params.threads) || params.memory > maxArgonMemory {
		return params, ErrInvalidFormat
	}

	var err error
	if params.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return params, ErrInvalidFormat
	}
	params.key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(params.key) == 0 {
		return params, ErrInvalidFormat
	}
	return params, nil
}

// decodeSalted splits base64(digest || salt) for the hash h.
func decodeSalted(h hash.Hash, encoded string) (digest, salt []byte, err error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(data) <= h.Size() {
		return nil, nil, ErrInvalidFormat
	}
	return data[:h.Size()], data[h.Size():], nil
}

func compare(a, b []byte) error {
	if subtle.ConstantTimeCompare(a, b) == 1 {
		return nil
	}
	return ErrMismatch
}

func newSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("password: generate salt: %w", err)
	}
	return salt, nil
}
