package usecase

import "errors"

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeConflict   = "CONFLICT"
	CodeNotFound   = "NOT_FOUND"
	CodeAuth       = "AUTH_FAILED"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewValidationError(message string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: message}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: message}
}

func NewNotFoundError(message string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: message}
}

// ErrInvalidCredentials is the single authentication failure. Every auth
// failure path returns this exact value so callers cannot tell an unknown
// email from a wrong password.
var ErrInvalidCredentials = &DomainError{Code: CodeAuth, Message: "invalid credentials"}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// ErrorCode extracts the domain code, or "" for technical errors.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}
