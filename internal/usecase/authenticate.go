package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/flyfox-ai/funnel/internal/entity"
)

// dummyHash is compared against when the email is unknown so both failure
// paths do one bcrypt comparison. The hashed value is never accepted.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type AuthenticateUseCase struct {
	Customers CustomerRepositoryInterface
	Sessions  SessionRepositoryInterface
}

func NewAuthenticateUseCase(customers CustomerRepositoryInterface, sessions SessionRepositoryInterface) *AuthenticateUseCase {
	return &AuthenticateUseCase{Customers: customers, Sessions: sessions}
}

// Execute verifies credentials and issues a session. Every failure returns
// ErrInvalidCredentials: the response never reveals whether the email exists.
func (uc *AuthenticateUseCase) Execute(ctx context.Context, input AuthenticateInput) (*AuthenticateOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	customer, err := uc.Customers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
			return nil, ErrInvalidCredentials
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(input.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := entity.NewSession(customer.ID)
	if err != nil {
		return nil, &TechnicalError{Code: "TOKEN_ERROR", Message: err.Error()}
	}
	if err := uc.Sessions.Create(ctx, session); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist session: " + err.Error()}
	}

	return &AuthenticateOutput{
		Token:      session.Token,
		CustomerID: customer.ID,
		ExpiresAt:  session.ExpiresAt,
	}, nil
}

// ValidateToken succeeds only for a known, unrevoked, unexpired token.
func (uc *AuthenticateUseCase) ValidateToken(ctx context.Context, token string) (*SessionInfoOutput, error) {
	if token == "" {
		return nil, ErrInvalidCredentials
	}

	session, err := uc.Sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, entity.ErrSessionNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if !session.IsValid(time.Now()) {
		return nil, ErrInvalidCredentials
	}

	customer, err := uc.Customers.FindByID(ctx, session.CustomerID)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	return &SessionInfoOutput{
		CustomerID: customer.ID,
		Email:      customer.Email,
		Name:       customer.Name,
		ExpiresAt:  session.ExpiresAt,
	}, nil
}

// Logout revokes the session. Revoking a token twice, or a token that never
// existed, is not an error.
func (uc *AuthenticateUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := uc.Sessions.Revoke(ctx, token); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return nil
}
