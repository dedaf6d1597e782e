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

// PostgresShowRepository implements ShowRepository using PostgreSQL. Shows
// carry no tenant column; the scope predicate follows shows.venue_id.
type PostgresShowRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresShowRepository creates a new PostgresShowRepository
func NewPostgresShowRepository(pool *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{pool: pool}
}

// Create creates a new show
func (r *PostgresShowRepository) Create(ctx context.Context, s *domain.Show) error {
	query := `
		INSERT INTO shows (external_id, venue_id, act_id, ticket_count, start_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		s.ExternalID,
		s.VenueID,
		s.ActID,
		s.TicketCount,
		s.StartTime,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&s.ID)
}

const showColumns = `shows.id, shows.external_id, shows.venue_id, shows.act_id, shows.ticket_count,
	shows.start_time, shows.created_at, shows.updated_at,
	venues.external_id, venues.name, acts.external_id, acts.name`

const showJoins = `
	FROM shows
	JOIN venues ON venues.id = shows.venue_id
	JOIN acts ON acts.id = shows.act_id`

func scanShow(row pgx.Row) (*domain.Show, error) {
	s := &domain.Show{}
	err := row.Scan(
		&s.ID,
		&s.ExternalID,
		&s.VenueID,
		&s.ActID,
		&s.TicketCount,
		&s.StartTime,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.VenueExternalID,
		&s.VenueName,
		&s.ActExternalID,
		&s.ActName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// GetByExternalID retrieves a show by external id under the given scope
func (r *PostgresShowRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Show, error) {
	query := `SELECT ` + showColumns + showJoins + `
		WHERE shows.external_id = $1 AND ` + scope.Predicate(scope.EntityShow, 2)
	return scanShow(r.pool.QueryRow(ctx, query, externalID, sc.Param()))
}

// ListByActID retrieves all shows referencing the act
func (r *PostgresShowRepository) ListByActID(ctx context.Context, sc tenant.Context, actID int64) ([]*domain.Show, error) {
	query := `SELECT ` + showColumns + showJoins + `
		WHERE shows.act_id = $1 AND ` + scope.Predicate(scope.EntityShow, 2) + `
		ORDER BY shows.id`
	rows, err := r.pool.Query(ctx, query, actID, sc.Param())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShows(rows)
}

// ListByVenueWithin retrieves shows at the venue whose start time falls in
// [from, to]. start_time is timestamptz so the comparison is on the absolute
// instant regardless of the offset the value was written with.
func (r *PostgresShowRepository) ListByVenueWithin(ctx context.Context, sc tenant.Context, venueID int64, from, to time.Time) ([]*domain.Show, error) {
	query := `SELECT ` + showColumns + showJoins + `
		WHERE shows.venue_id = $1 AND shows.start_time BETWEEN $2 AND $3 AND ` + scope.Predicate(scope.EntityShow, 4) + `
		ORDER BY shows.start_time ASC`
	rows, err := r.pool.Query(ctx, query, venueID, from, to, sc.Param())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShows(rows)
}

func collectShows(rows pgx.Rows) ([]*domain.Show, error) {
	var shows []*domain.Show
	for rows.Next() {
		s, err := scanShow(rows)
		if err != nil {
			return nil, err
		}
		shows = append(shows, s)
	}
	return shows, rows.Err()
}

// Update updates the mutable fields of a show. Venue and act references are
// immutable after creation and are deliberately absent from the SET list.
func (r *PostgresShowRepository) Update(ctx context.Context, sc tenant.Context, s *domain.Show) error {
	query := `
		UPDATE shows
		SET ticket_count = $2, start_time = $3, updated_at = $4
		WHERE shows.id = $1 AND ` + scope.Predicate(scope.EntityShow, 5)
	s.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		s.ID,
		s.TicketCount,
		s.StartTime,
		s.UpdatedAt,
		sc.Param(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.NewNotFound("show")
	}
	return nil
}

// Delete hard deletes a show; ticket offers and sales cascade via foreign keys
func (r *PostgresShowRepository) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	query := `
		DELETE FROM shows
		WHERE shows.external_id = $1 AND ` + scope.Predicate(scope.EntityShow, 2)
	result, err := r.pool.Exec(ctx, query, externalID, sc.Param())
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
