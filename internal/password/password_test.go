package password

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	for _, scheme := range Schemes() {
		t.Run(scheme, func(t *testing.T) {
			stored, err := Hash("s3cret!", scheme)
			if err != nil {
				t.Fatalf("Hash failed: %v", err)
			}
			if !strings.HasPrefix(stored, scheme) {
				t.Errorf("expected prefix %s, got %q", scheme, stored)
			}
			if err := Verify("s3cret!", stored); err != nil {
				t.Errorf("Verify failed: %v", err)
			}
			if err := Verify("wrong", stored); !errors.Is(err, ErrMismatch) {
				t.Errorf("expected ErrMismatch, got %v", err)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same", SchemeSSHA256)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Hash("same", SchemeSSHA256)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("expected different hashes for the same password")
	}
}

func TestVerifyKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		// base64(sha1("secret" || "salt") || "salt")
		{"ssha", "{SSHA}" + saltedDigest(newHash(SchemeSSHA), "secret", []byte("salt"))},
		{"lowercase scheme", "{ssha256}" + saltedDigest(newHash(SchemeSSHA256), "secret", []byte("salt"))},
		{"argon2", "{ARGON2}" + encodeArgon2("secret", []byte("saltsaltsaltsalt"), 1, 1024, 1)},
		{"cleartext", "{CLEARTEXT}secret"},
		{"no scheme", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify("secret", tt.stored); err != nil {
				t.Errorf("Verify failed: %v", err)
			}
		})
	}
}

func TestVerifyInvalid(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		err    error
	}{
		{"bad base64", "{SSHA256}!!!", ErrInvalidFormat},
		{"too short", "{SSHA256}YWJj", ErrInvalidFormat},
		{"bad argon2", "{ARGON2}$argon2i$v=19$m=1,t=1,p=1$c2FsdA$a2V5", ErrInvalidFormat},
		{"argon2 zero time", "{ARGON2}$argon2id$v=19$m=65536,t=0,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5", ErrInvalidFormat},
		{"argon2 zero threads", "{ARGON2}$argon2id$v=19$m=65536,t=1,p=0$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5", ErrInvalidFormat},
		{"argon2 memory below minimum", "{ARGON2}$argon2id$v=19$m=15,t=1,p=2$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5", ErrInvalidFormat},
		{"argon2 memory too large", "{ARGON2}$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5", ErrInvalidFormat},
		{"argon2 missing key", "{ARGON2}$argon2id$v=19$m=65536,t=1,p=1$c2FsdHNhbHQ$", ErrInvalidFormat},
		{"unknown scheme", "{MD5}abc", ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify("secret", tt.stored); !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestCheckFormat(t *testing.T) {
	hashed, err := Hash("secret", SchemeSSHA)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name   string
		stored string
		valid  bool
	}{
		{"plain", "secret", true},
		{"ssha", hashed, true},
		{"cleartext", "{CLEARTEXT}secret", true},
		{"other scheme", "{CRYPT}$6$abc$def", true},
		{"bad ssha", "{SSHA}already", false},
		{"short ssha512", "{SSHA512}YWJj", false},
		{"argon2 zero time", "{ARGON2}$argon2id$v=19$m=65536,t=0,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5", false},
		{"argon2 memory too large", "{ARGON2}$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFormat(tt.stored)
			if tt.valid && err != nil {
				t.Errorf("CheckFormat(%q) = %v, want nil", tt.stored, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("CheckFormat(%q) = %v, want %v", tt.stored, err, ErrInvalidFormat)
			}
		})
	}
}

func TestNormalizeScheme(t *testing.T) {
	tests := []struct {
		input string
		want  string
		err   bool
	}{
		{"", DefaultScheme, false},
		{"ssha", SchemeSSHA, false},
		{"{ssha512}", SchemeSSHA512, false},
		{" argon2 ", SchemeArgon2, false},
		{"md5", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeScheme(tt.input)
			if tt.err {
				if !errors.Is(err, ErrUnsupportedScheme) {
					t.Errorf("expected ErrUnsupportedScheme, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("NormalizeScheme(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestIsHashed(t *testing.T) {
	tests := map[string]bool{
		"{SSHA}abc":  true,
		"{x}":        true,
		"plain":      false,
		"{}abc":      false,
		"{unclosed":  false,
		"a{SSHA}abc": false,
	}
	for value, want := range tests {
		if got := IsHashed(value); got != want {
			t.Errorf("IsHashed(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestPolicyCheck(t *testing.T) {
	policy := Policy{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
	}

	tests := []struct {
		password string
		valid    bool
	}{
		{"Passw0rd!", true},
		{"Pw0!", false},
		{"password0!", false},
		{"PASSWORD0!", false},
		{"Password!!", false},
		{"Password00", false},
		{"Şifre1234!", true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := policy.Check(tt.password)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid {
				var perr *PolicyError
				if !errors.As(err, &perr) {
					t.Errorf("expected PolicyError, got %v", err)
				}
			}
		})
	}

	if err := (Policy{}).Check(""); err != nil {
		t.Errorf("empty policy should accept anything, got %v", err)
	}
}
