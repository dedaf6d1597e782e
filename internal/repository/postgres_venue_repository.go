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

// PostgresVenueRepository implements VenueRepository using PostgreSQL.
type PostgresVenueRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVenueRepository creates a new PostgresVenueRepository
func NewPostgresVenueRepository(pool *pgxpool.Pool) *PostgresVenueRepository {
	return &PostgresVenueRepository{pool: pool}
}

// Create creates a new venue
func (r *PostgresVenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `
		INSERT INTO venues (external_id, tenant_id, name, address, latitude, longitude, seating_capacity, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		v.ExternalID,
		v.TenantID,
		v.Name,
		v.Address,
		v.Latitude,
		v.Longitude,
		v.SeatingCapacity,
		v.Description,
		v.CreatedAt,
		v.UpdatedAt,
	).Scan(&v.ID)
}

const venueColumns = `venues.id, venues.external_id, venues.tenant_id, venues.name, venues.address,
	venues.latitude, venues.longitude, venues.seating_capacity, venues.description,
	venues.created_at, venues.updated_at`

func scanVenue(row pgx.Row) (*domain.Venue, error) {
	v := &domain.Venue{}
	err := row.Scan(
		&v.ID,
		&v.ExternalID,
		&v.TenantID,
		&v.Name,
		&v.Address,
		&v.Latitude,
		&v.Longitude,
		&v.SeatingCapacity,
		&v.Description,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// GetByExternalID retrieves a venue by external id under the given scope
func (r *PostgresVenueRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		WHERE venues.external_id = $1 AND ` + scope.Predicate(scope.EntityVenue, 2)
	return scanVenue(r.pool.QueryRow(ctx, query, externalID, sc.Param()))
}

// List lists all venues visible under the given scope
func (r *PostgresVenueRepository) List(ctx context.Context, sc tenant.Context) ([]*domain.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		WHERE ` + scope.Predicate(scope.EntityVenue, 1) + `
		ORDER BY venues.id
	`
	rows, err := r.pool.Query(ctx, query, sc.Param())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []*domain.Venue
	for rows.Next() {
		v := &domain.Venue{}
		err := rows.Scan(
			&v.ID,
			&v.ExternalID,
			&v.TenantID,
			&v.Name,
			&v.Address,
			&v.Latitude,
			&v.Longitude,
			&v.SeatingCapacity,
			&v.Description,
			&v.CreatedAt,
			&v.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

// Update updates a venue under the given scope
func (r *PostgresVenueRepository) Update(ctx context.Context, sc tenant.Context, v *domain.Venue) error {
	query := `
		UPDATE venues
		SET name = $2, address = $3, latitude = $4, longitude = $5, seating_capacity = $6, description = $7, updated_at = $8
		WHERE venues.id = $1 AND ` + scope.Predicate(scope.EntityVenue, 9)
	v.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		v.ID,
		v.Name,
		v.Address,
		v.Latitude,
		v.Longitude,
		v.SeatingCapacity,
		v.Description,
		v.UpdatedAt,
		sc.Param(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.NewNotFound("venue")
	}
	return nil
}

// Delete hard deletes a venue; dependent shows cascade via foreign keys
func (r *PostgresVenueRepository) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	query := `
		DELETE FROM venues
		WHERE venues.external_id = $1 AND ` + scope.Predicate(scope.EntityVenue, 2)
	result, err := r.pool.Exec(ctx, query, externalID, sc.Param())
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
