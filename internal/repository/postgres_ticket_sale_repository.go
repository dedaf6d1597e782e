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

// PostgresTicketSaleRepository implements TicketSaleRepository using
// PostgreSQL.
type PostgresTicketSaleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketSaleRepository creates a new PostgresTicketSaleRepository
func NewPostgresTicketSaleRepository(pool *pgxpool.Pool) *PostgresTicketSaleRepository {
	return &PostgresTicketSaleRepository{pool: pool}
}

// Create creates a new ticket sale
func (r *PostgresTicketSaleRepository) Create(ctx context.Context, s *domain.TicketSale) error {
	query := `
		INSERT INTO ticket_sales (external_id, show_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		s.ExternalID,
		s.ShowID,
		s.Quantity,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&s.ID)
}

const saleColumns = `ticket_sales.id, ticket_sales.external_id, ticket_sales.show_id,
	ticket_sales.quantity, ticket_sales.created_at, ticket_sales.updated_at,
	shows.external_id`

const saleJoins = `JOIN shows ON shows.id = ticket_sales.show_id`

func scanTicketSale(row pgx.Row) (*domain.TicketSale, error) {
	s := &domain.TicketSale{}
	err := row.Scan(&s.ID, &s.ExternalID, &s.ShowID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt, &s.ShowExternalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// GetByExternalID retrieves a sale by external id under the given scope
func (r *PostgresTicketSaleRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.TicketSale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM ticket_sales
		` + saleJoins + `
		WHERE ticket_sales.external_id = $1 AND ` + scope.Predicate(scope.EntityTicketSale, 2)
	return scanTicketSale(r.pool.QueryRow(ctx, query, externalID, sc.Param()))
}

// ListByShowID retrieves all sales for a show
func (r *PostgresTicketSaleRepository) ListByShowID(ctx context.Context, sc tenant.Context, showID int64) ([]*domain.TicketSale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM ticket_sales
		` + saleJoins + `
		WHERE ticket_sales.show_id = $1 AND ` + scope.Predicate(scope.EntityTicketSale, 2) + `
		ORDER BY ticket_sales.id
	`
	rows, err := r.pool.Query(ctx, query, showID, sc.Param())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*domain.TicketSale
	for rows.Next() {
		s, err := scanTicketSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// Update updates a sale under the given scope
func (r *PostgresTicketSaleRepository) Update(ctx context.Context, sc tenant.Context, s *domain.TicketSale) error {
	query := `
		UPDATE ticket_sales
		SET quantity = $2, updated_at = $3
		WHERE ticket_sales.id = $1 AND ` + scope.Predicate(scope.EntityTicketSale, 4)
	s.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query, s.ID, s.Quantity, s.UpdatedAt, sc.Param())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.NewNotFound("ticket sale")
	}
	return nil
}

// Delete hard deletes a sale
func (r *PostgresTicketSaleRepository) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	query := `
		DELETE FROM ticket_sales
		WHERE ticket_sales.external_id = $1 AND ` + scope.Predicate(scope.EntityTicketSale, 2)
	result, err := r.pool.Exec(ctx, query, externalID, sc.Param())
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
