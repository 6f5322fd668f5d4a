package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEmailAlreadyExists = errors.New("a customer with this email already exists")
)

// Customer is an account holder. It lives in its own identity space: a
// customer may share an email with a lead but nothing links the two rows.
type Customer struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	PasswordHash      string    `json:"-"`
	Phone             string    `json:"phone,omitempty"`
	Company           string    `json:"company,omitempty"`
	GatewayCustomerID string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewCustomer(email, name, passwordHash, phone, company string) *Customer {
	return &Customer{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Phone:        phone,
		Company:      company,
		CreatedAt:    time.Now(),
	}
}
