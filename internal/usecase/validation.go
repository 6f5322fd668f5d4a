package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	// mail.ParseAddress accepts local addresses without a dot in the domain;
	// the funnel only ever sees fully-qualified ones.
	at := strings.LastIndex(email, "@")
	return strings.Contains(email[at+1:], ".")
}

const minPasswordLength = 8

// validatePassword enforces the account password policy: minimum length,
// at least one letter and one digit.
func validatePassword(password string) []ValidationError {
	var errs []ValidationError
	if len(password) < minPasswordLength {
		errs = append(errs, ValidationError{"password", fmt.Sprintf("must have at least %d characters", minPasswordLength)})
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		errs = append(errs, ValidationError{"password", "must contain at least one letter"})
	}
	if !hasDigit {
		errs = append(errs, ValidationError{"password", "must contain at least one digit"})
	}
	return errs
}

func joinValidationErrors(errs []ValidationError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
