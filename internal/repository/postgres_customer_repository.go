package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/scope"
	"github.com/stagepass/stagepass/internal/tenant"
)

// PostgresCustomerRepository implements CustomerRepository using PostgreSQL.
// Billing address columns are NOT NULL; shipping address columns are nullable
// as a group.
type PostgresCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCustomerRepository creates a new PostgresCustomerRepository
func NewPostgresCustomerRepository(pool *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{pool: pool}
}

// Create creates a new customer
func (r *PostgresCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `
		INSERT INTO customers (external_id, tenant_id, name,
			billing_street, billing_city, billing_state, billing_postal_code, billing_country,
			shipping_street, shipping_city, shipping_state, shipping_postal_code, shipping_country,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	var shipStreet, shipCity, shipState, shipPostal, shipCountry *string
	if c.ShippingAddress != nil {
		shipStreet = &c.ShippingAddress.Street
		shipCity = &c.ShippingAddress.City
		shipState = &c.ShippingAddress.State
		shipPostal = &c.ShippingAddress.PostalCode
		shipCountry = &c.ShippingAddress.Country
	}
	return r.pool.QueryRow(ctx, query,
		c.ExternalID,
		c.TenantID,
		c.Name,
		c.BillingAddress.Street,
		c.BillingAddress.City,
		c.BillingAddress.State,
		c.BillingAddress.PostalCode,
		c.BillingAddress.Country,
		shipStreet,
		shipCity,
		shipState,
		shipPostal,
		shipCountry,
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(&c.ID)
}

const customerColumns = `customers.id, customers.external_id, customers.tenant_id, customers.name,
	customers.billing_street, customers.billing_city, customers.billing_state, customers.billing_postal_code, customers.billing_country,
	customers.shipping_street, customers.shipping_city, customers.shipping_state, customers.shipping_postal_code, customers.shipping_country,
	customers.created_at, customers.updated_at`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	c := &domain.Customer{}
	var shipStreet, shipCity, shipState, shipPostal, shipCountry *string
	err := row.Scan(
		&c.ID,
		&c.ExternalID,
		&c.TenantID,
		&c.Name,
		&c.BillingAddress.Street,
		&c.BillingAddress.City,
		&c.BillingAddress.State,
		&c.BillingAddress.PostalCode,
		&c.BillingAddress.Country,
		&shipStreet,
		&shipCity,
		&shipState,
		&shipPostal,
		&shipCountry,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if shipStreet != nil {
		c.ShippingAddress = &domain.Address{
			Street:     *shipStreet,
			City:       deref(shipCity),
			State:      deref(shipState),
			PostalCode: deref(shipPostal),
			Country:    deref(shipCountry),
		}
	}
	return c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetByExternalID retrieves a customer by external id under the given scope
func (r *PostgresCustomerRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE customers.external_id = $1 AND ` + scope.Predicate(scope.EntityCustomer, 2)
	return scanCustomer(r.pool.QueryRow(ctx, query, externalID, sc.Param()))
}

// List lists all customers visible under the given scope
func (r *PostgresCustomerRepository) List(ctx context.Context, sc tenant.Context) ([]*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE ` + scope.Predicate(scope.EntityCustomer, 1) + `
		ORDER BY customers.id
	`
	rows, err := r.pool.Query(ctx, query, sc.Param())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Update updates a customer under the given scope
func (r *PostgresCustomerRepository) Update(ctx context.Context, sc tenant.Context, c *domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $2,
			billing_street = $3, billing_city = $4, billing_state = $5, billing_postal_code = $6, billing_country = $7,
			shipping_street = $8, shipping_city = $9, shipping_state = $10, shipping_postal_code = $11, shipping_country = $12,
			updated_at = $13
		WHERE customers.id = $1 AND ` + scope.Predicate(scope.EntityCustomer, 14)
	var shipStreet, shipCity, shipState, shipPostal, shipCountry *string
	if c.ShippingAddress != nil {
		shipStreet = &c.ShippingAddress.Street
		shipCity = &c.ShippingAddress.City
		shipState = &c.ShippingAddress.State
		shipPostal = &c.ShippingAddress.PostalCode
		shipCountry = &c.ShippingAddress.Country
	}
	c.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.BillingAddress.Street,
		c.BillingAddress.City,
		c.BillingAddress.State,
		c.BillingAddress.PostalCode,
		c.BillingAddress.Country,
		shipStreet,
		shipCity,
		shipState,
		shipPostal,
		shipCountry,
		c.UpdatedAt,
		sc.Param(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.NewNotFound("customer")
	}
	return nil
}

// Delete hard deletes a customer
func (r *PostgresCustomerRepository) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	query := `
		DELETE FROM customers
		WHERE customers.external_id = $1 AND ` + scope.Predicate(scope.EntityCustomer, 2)
	result, err := r.pool.Exec(ctx, query, externalID, sc.Param())
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
