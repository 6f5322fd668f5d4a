package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/flyfox-ai/funnel/internal/entity"
)

type RegisterCustomerUseCase struct {
	Customers CustomerRepositoryInterface
	Gateway   PaymentGateway
}

func NewRegisterCustomerUseCase(customers CustomerRepositoryInterface, gateway PaymentGateway) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{Customers: customers, Gateway: gateway}
}

func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, input RegisterCustomerInput) (*RegisterCustomerOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if !isValidEmail(email) {
		return nil, NewValidationError("email is invalid")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, NewValidationError("name is required")
	}
	if errs := validatePassword(input.Password); len(errs) > 0 {
		return nil, NewValidationError(joinValidationErrors(errs))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &TechnicalError{Code: "HASH_ERROR", Message: "failed to hash password: " + err.Error()}
	}

	customer := entity.NewCustomer(email, strings.TrimSpace(input.Name), string(hash), input.Phone, input.Company)

	// Duplicate detection happens at the unique index, not with a lookup
	// first, so concurrent registrations for the same email cannot both pass.
	if err := uc.Customers.Create(ctx, customer); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, NewConflictError("a customer with this email already exists")
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to create customer: " + err.Error()}
	}

	// Provision the billing-side customer eagerly so later charges have an
	// id to bill against. Best effort; the account exists either way.
	if uc.Gateway != nil {
		go func() {
			gwID, err := uc.Gateway.CreateCustomer(context.Background(), customer.Email, customer.Name)
			if err != nil {
				log.Printf("gateway customer creation failed for %s: %v", customer.Email, err)
				return
			}
			if err := uc.Customers.SetGatewayCustomerID(context.Background(), customer.ID, gwID); err != nil {
				log.Printf("failed to store gateway id for customer %s: %v", customer.ID, err)
			}
		}()
	}

	return &RegisterCustomerOutput{CustomerID: customer.ID, Email: customer.Email}, nil
}
