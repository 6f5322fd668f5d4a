package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"first.last@sub.domain.co",
		"user+tag@example.org",
	}
	for _, email := range valid {
		assert.True(t, isValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@localhost",
		"Ana Souza <ana@example.com>",
	}
	for _, email := range invalid {
		assert.False(t, isValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Empty(t, validatePassword("abcdef12"))

	assert.NotEmpty(t, validatePassword("ab1"))
	assert.NotEmpty(t, validatePassword("onlyletters"))
	assert.NotEmpty(t, validatePassword("123456789"))
}

func TestJoinValidationErrors(t *testing.T) {
	errs := validatePassword("abc")
	msg := joinValidationErrors(errs)
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "password")
}
