// Package repository implements data persistence for the customer directory.
//
// Provides PostgreSQL, MySQL and in-memory implementations. Endpoint lists
// are stored as JSON columns in the SQL backends.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	customerDomain "github.com/allisson/tokens/internal/customer/domain"
	"github.com/allisson/tokens/internal/database"
	apperrors "github.com/allisson/tokens/internal/errors"
)

// PostgreSQLCustomerRepository implements Customer persistence for PostgreSQL.
type PostgreSQLCustomerRepository struct {
	db *sql.DB
}

// Get retrieves a Customer by code from the PostgreSQL database.
func (p *PostgreSQLCustomerRepository) Get(
	ctx context.Context,
	code string,
) (*customerDomain.Customer, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT code, name, endpoints, created_at FROM customers WHERE code = $1`

	var customer customerDomain.Customer
	var endpointsJSON []byte

	err := querier.QueryRowContext(ctx, query, code).Scan(
		&customer.Code,
		&customer.Name,
		&endpointsJSON,
		&customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customerDomain.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get customer")
	}

	if err := json.Unmarshal(endpointsJSON, &customer.Endpoints); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal customer endpoints")
	}

	return &customer, nil
}

// List retrieves all customers ordered by code.
func (p *PostgreSQLCustomerRepository) List(ctx context.Context) ([]*customerDomain.Customer, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT code, name, endpoints, created_at FROM customers ORDER BY code ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list customers")
	}
	defer func() { _ = rows.Close() }()

	var customers []*customerDomain.Customer
	for rows.Next() {
		var customer customerDomain.Customer
		var endpointsJSON []byte

		if err := rows.Scan(
			&customer.Code,
			&customer.Name,
			&endpointsJSON,
			&customer.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan customer")
		}

		if err := json.Unmarshal(endpointsJSON, &customer.Endpoints); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal customer endpoints")
		}

		customers = append(customers, &customer)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate customers")
	}

	return customers, nil
}

// NewPostgreSQLCustomerRepository creates a new PostgreSQL Customer repository.
func NewPostgreSQLCustomerRepository(db *sql.DB) *PostgreSQLCustomerRepository {
	return &PostgreSQLCustomerRepository{db: db}
}
