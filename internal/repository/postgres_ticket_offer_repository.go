package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/scope"
	"github.com/stagepass/stagepass/internal/tenant"
)

// PostgresTicketOfferRepository implements TicketOfferRepository using
// PostgreSQL.
type PostgresTicketOfferRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketOfferRepository creates a new PostgresTicketOfferRepository
func NewPostgresTicketOfferRepository(pool *pgxpool.Pool) *PostgresTicketOfferRepository {
	return &PostgresTicketOfferRepository{pool: pool}
}

// Create inserts the offer after re-validating the allocation inside a
// transaction. The show row is locked for the duration, so two concurrent
// creations for the same show serialize here; the loser of the race sees the
// updated sum and gets a conflict instead of over-allocating the show.
func (r *PostgresTicketOfferRepository) Create(ctx context.Context, offer *domain.TicketOffer) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var total int
	err = tx.QueryRow(ctx, `SELECT ticket_count FROM shows WHERE id = $1 FOR UPDATE`, offer.ShowID).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFound("show")
		}
		return err
	}

	var allocated int
	err = tx.QueryRow(ctx, `SELECT COALESCE(SUM(ticket_count), 0) FROM ticket_offers WHERE show_id = $1`, offer.ShowID).Scan(&allocated)
	if err != nil {
		return err
	}

	if remaining := total - allocated; offer.TicketCount > remaining {
		return domain.NewConflict(fmt.Sprintf("ticket allocation changed concurrently: %d tickets remaining", remaining))
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO ticket_offers (external_id, show_id, name, price, ticket_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		offer.ExternalID,
		offer.ShowID,
		offer.Name,
		offer.Price,
		offer.TicketCount,
		offer.CreatedAt,
		offer.UpdatedAt,
	).Scan(&offer.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const offerColumns = `ticket_offers.id, ticket_offers.external_id, ticket_offers.show_id,
	ticket_offers.name, ticket_offers.price, ticket_offers.ticket_count,
	ticket_offers.created_at, ticket_offers.updated_at,
	shows.external_id`

const offerJoins = `JOIN shows ON shows.id = ticket_offers.show_id`

func scanTicketOffer(row pgx.Row) (*domain.TicketOffer, error) {
	o := &domain.TicketOffer{}
	err := row.Scan(
		&o.ID,
		&o.ExternalID,
		&o.ShowID,
		&o.Name,
		&o.Price,
		&o.TicketCount,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.ShowExternalID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

// GetByExternalID retrieves an offer by external id under the given scope
func (r *PostgresTicketOfferRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.TicketOffer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM ticket_offers
		` + offerJoins + `
		WHERE ticket_offers.external_id = $1 AND ` + scope.Predicate(scope.EntityTicketOffer, 2)
	return scanTicketOffer(r.pool.QueryRow(ctx, query, externalID, sc.Param()))
}

// ListByShowID retrieves all offers for a show
func (r *PostgresTicketOfferRepository) ListByShowID(ctx context.Context, sc tenant.Context, showID int64) ([]*domain.TicketOffer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM ticket_offers
		` + offerJoins + `
		WHERE ticket_offers.show_id = $1 AND ` + scope.Predicate(scope.EntityTicketOffer, 2) + `
		ORDER BY ticket_offers.id
	`
	rows, err := r.pool.Query(ctx, query, showID, sc.Param())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*domain.TicketOffer
	for rows.Next() {
		o, err := scanTicketOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// SumTicketCountByShowID returns the sum of offer ticket counts for a show
func (r *PostgresTicketOfferRepository) SumTicketCountByShowID(ctx context.Context, showID int64) (int, error) {
	var sum int
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(ticket_count), 0) FROM ticket_offers WHERE show_id = $1`, showID).Scan(&sum)
	return sum, err
}
