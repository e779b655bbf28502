package main

import (
	"fmt"
	"strings"

	"github.com/KilimcininKorOglu/obaentry/internal/config"
	"github.com/KilimcininKorOglu/obaentry/internal/password"
)

// hashPasswords replaces cleartext userPassword assignments with hashes.
// Values that already carry a {SCHEME} prefix are sent as given once they
// decode.
func hashPasswords(assigns []assignment, cfg config.PasswordConfig) error {
	policy := password.Policy{
		MinLength:        cfg.MinLength,
		RequireUppercase: cfg.RequireUppercase,
		RequireLowercase: cfg.RequireLowercase,
		RequireDigit:     cfg.RequireDigit,
		RequireSpecial:   cfg.RequireSpecial,
	}

	for i, a := range assigns {
		if a.Clear || !strings.EqualFold(a.Attribute, password.Attribute) {
			continue
		}
		if password.IsHashed(a.Value) {
			if err := password.CheckFormat(a.Value); err != nil {
				return fmt.Errorf("%s: %w", a.Attribute, err)
			}
			continue
		}
		if err := policy.Check(a.Value); err != nil {
			return err
		}
		hashed, err := password.Hash(a.Value, cfg.Scheme)
		if err != nil {
			return fmt.Errorf("error hashing %s: %w", a.Attribute, err)
		}
		assigns[i].Value = hashed
	}
	return nil
}
