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

// PostgresActRepository implements ActRepository using PostgreSQL.
type PostgresActRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresActRepository creates a new PostgresActRepository
func NewPostgresActRepository(pool *pgxpool.Pool) *PostgresActRepository {
	return &PostgresActRepository{pool: pool}
}

// Create creates a new act
func (r *PostgresActRepository) Create(ctx context.Context, a *domain.Act) error {
	query := `
		INSERT INTO acts (external_id, tenant_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		a.ExternalID,
		a.TenantID,
		a.Name,
		a.CreatedAt,
		a.UpdatedAt,
	).Scan(&a.ID)
}

const actColumns = `acts.id, acts.external_id, acts.tenant_id, acts.name, acts.created_at, acts.updated_at`

func scanAct(row pgx.Row) (*domain.Act, error) {
	a := &domain.Act{}
	err := row.Scan(&a.ID, &a.ExternalID, &a.TenantID, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// GetByExternalID retrieves an act by external id under the given scope
func (r *PostgresActRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Act, error) {
	query := `
		SELECT ` + actColumns + `
		FROM acts
		WHERE acts.external_id = $1 AND ` + scope.Predicate(scope.EntityAct, 2)
	return scanAct(r.pool.QueryRow(ctx, query, externalID, sc.Param()))
}

// List lists all acts visible under the given scope
func (r *PostgresActRepository) List(ctx context.Context, sc tenant.Context) ([]*domain.Act, error) {
	query := `
		SELECT ` + actColumns + `
		FROM acts
		WHERE ` + scope.Predicate(scope.EntityAct, 1) + `
		ORDER BY acts.id
	`
	rows, err := r.pool.Query(ctx, query, sc.Param())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var acts []*domain.Act
	for rows.Next() {
		a := &domain.Act{}
		if err := rows.Scan(&a.ID, &a.ExternalID, &a.TenantID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		acts = append(acts, a)
	}
	return acts, rows.Err()
}

// Update updates an act under the given scope
func (r *PostgresActRepository) Update(ctx context.Context, sc tenant.Context, a *domain.Act) error {
	query := `
		UPDATE acts
		SET name = $2, updated_at = $3
		WHERE acts.id = $1 AND ` + scope.Predicate(scope.EntityAct, 4)
	a.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query, a.ID, a.Name, a.UpdatedAt, sc.Param())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.NewNotFound("act")
	}
	return nil
}

// Delete hard deletes an act; dependent shows cascade via foreign keys
func (r *PostgresActRepository) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	query := `
		DELETE FROM acts
		WHERE acts.external_id = $1 AND ` + scope.Predicate(scope.EntityAct, 2)
	result, err := r.pool.Exec(ctx, query, externalID, sc.Param())
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
