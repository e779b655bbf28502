package password

import (
	"fmt"
	"unicode"
)

// Policy holds password complexity requirements.
type Policy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool
	RequireSpecial   bool
}

// PolicyError reports the first requirement a password fails.
type PolicyError struct {
	Message string
}

// Error implements the error interface.
func (e *PolicyError) Error() string {
	return "password: " + e.Message
}

// Check returns a *PolicyError if plaintext does not meet p.
func (p Policy) Check(plaintext string) error {
	if p.MinLength > 0 && len([]rune(plaintext)) < p.MinLength {
		return &PolicyError{Message: fmt.Sprintf("must be at least %d characters", p.MinLength)}
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range plaintext {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case p.RequireUppercase && !hasUpper:
		return &PolicyError{Message: "must contain at least one uppercase letter"}
	case p.RequireLowercase && !hasLower:
		return &PolicyError{Message: "must contain at least one lowercase letter"}
	case p.RequireDigit && !hasDigit:
		return &PolicyError{Message: "must contain at least one digit"}
	case p.RequireSpecial && !hasSpecial:
		return &PolicyError{Message: "must contain at least one special character"}
	}
	return nil
}
