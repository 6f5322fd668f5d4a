package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/flyfox-ai/funnel/internal/entity"
)

type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, email, name, password_hash, phone, company, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Email,
		c.Name,
		c.PasswordHash,
		nullString(c.Phone),
		nullString(c.Company),
		c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.scanOne(ctx, `
		SELECT id, email, name, password_hash, COALESCE(phone, ''), COALESCE(company, ''),
		       COALESCE(gateway_customer_id, ''), created_at
		FROM customers WHERE email = $1
	`, email)
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	return r.scanOne(ctx, `
		SELECT id, email, name, password_hash, COALESCE(phone, ''), COALESCE(company, ''),
		       COALESCE(gateway_customer_id, ''), created_at
		FROM customers WHERE id = $1
	`, id)
}

func (r *CustomerRepository) SetGatewayCustomerID(ctx context.Context, id, gatewayID string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE customers SET gateway_customer_id = $2 WHERE id = $1`, id, gatewayID)
	return err
}

func (r *CustomerRepository) scanOne(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&c.ID,
		&c.Email,
		&c.Name,
		&c.PasswordHash,
		&c.Phone,
		&c.Company,
		&c.GatewayCustomerID,
		&c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
