package repository

import (
	"context"
	"time"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/tenant"
)

// Every read and scoped write takes the caller's tenant scope explicitly; the
// Postgres implementations AND the scope predicate from internal/scope into
// each query, so a lookup by external id behaves identically for a row that
// does not exist and a row owned by another tenant.

// TenantRepository defines the interface for tenant data access. Tenants are
// unscoped: they are the root of the isolation hierarchy.
type TenantRepository interface {
	// Create creates a new tenant
	Create(ctx context.Context, t *domain.Tenant) error
	// GetByID retrieves a tenant by internal id
	GetByID(ctx context.Context, id int64) (*domain.Tenant, error)
	// GetByExternalID retrieves a tenant by external id
	GetByExternalID(ctx context.Context, externalID string) (*domain.Tenant, error)
	// GetBySlug retrieves a tenant by slug
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	// List lists all tenants
	List(ctx context.Context) ([]*domain.Tenant, error)
	// SlugExists checks if a slug already exists
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// VenueRepository defines the interface for venue data access.
type VenueRepository interface {
	// Create creates a new venue
	Create(ctx context.Context, v *domain.Venue) error
	// GetByExternalID retrieves a venue by external id under the given scope
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Venue, error)
	// List lists all venues visible under the given scope
	List(ctx context.Context, sc tenant.Context) ([]*domain.Venue, error)
	// Update updates a venue under the given scope
	Update(ctx context.Context, sc tenant.Context, v *domain.Venue) error
	// Delete hard deletes a venue; dependent shows cascade. Returns whether a
	// row was deleted.
	Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error)
}

// ActRepository defines the interface for act data access.
type ActRepository interface {
	// Create creates a new act
	Create(ctx context.Context, a *domain.Act) error
	// GetByExternalID retrieves an act by external id under the given scope
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Act, error)
	// List lists all acts visible under the given scope
	List(ctx context.Context, sc tenant.Context) ([]*domain.Act, error)
	// Update updates an act under the given scope
	Update(ctx context.Context, sc tenant.Context, a *domain.Act) error
	// Delete hard deletes an act; dependent shows cascade
	Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error)
}

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	// Create creates a new customer
	Create(ctx context.Context, c *domain.Customer) error
	// GetByExternalID retrieves a customer by external id under the given scope
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Customer, error)
	// List lists all customers visible under the given scope
	List(ctx context.Context, sc tenant.Context) ([]*domain.Customer, error)
	// Update updates a customer under the given scope
	Update(ctx context.Context, sc tenant.Context, c *domain.Customer) error
	// Delete hard deletes a customer
	Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error)
}

// ShowRepository defines the interface for show data access. Shows have no
// tenant column; the scope predicate follows the venue reference.
type ShowRepository interface {
	// Create creates a new show
	Create(ctx context.Context, s *domain.Show) error
	// GetByExternalID retrieves a show (with venue/act projection fields) by
	// external id under the given scope
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Show, error)
	// ListByActID retrieves all shows referencing the act
	ListByActID(ctx context.Context, sc tenant.Context, actID int64) ([]*domain.Show, error)
	// ListByVenueWithin retrieves shows at the venue whose start time falls in
	// [from, to], boundary inclusive, ordered ascending by start time
	ListByVenueWithin(ctx context.Context, sc tenant.Context, venueID int64, from, to time.Time) ([]*domain.Show, error)
	// Update updates a show's mutable fields under the given scope
	Update(ctx context.Context, sc tenant.Context, s *domain.Show) error
	// Delete hard deletes a show; offers and sales cascade. Returns whether a
	// row was deleted.
	Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error)
}

// TicketOfferRepository defines the interface for ticket offer data access.
type TicketOfferRepository interface {
	// Create inserts the offer inside a transaction that re-validates the
	// allocation against the show's ticket count while holding a row lock on
	// the show. Returns a conflict error if a concurrent creation consumed
	// the remaining allocation between the service's check and the commit.
	Create(ctx context.Context, offer *domain.TicketOffer) error
	// GetByExternalID retrieves an offer by external id under the given scope
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.TicketOffer, error)
	// ListByShowID retrieves all offers for a show
	ListByShowID(ctx context.Context, sc tenant.Context, showID int64) ([]*domain.TicketOffer, error)
	// SumTicketCountByShowID returns the sum of offer ticket counts for a show
	SumTicketCountByShowID(ctx context.Context, showID int64) (int, error)
}

// TicketSaleRepository defines the interface for ticket sale data access.
type TicketSaleRepository interface {
	// Create creates a new ticket sale
	Create(ctx context.Context, s *domain.TicketSale) error
	// GetByExternalID retrieves a sale by external id under the given scope
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.TicketSale, error)
	// ListByShowID retrieves all sales for a show
	ListByShowID(ctx context.Context, sc tenant.Context, showID int64) ([]*domain.TicketSale, error)
	// Update updates a sale under the given scope
	Update(ctx context.Context, sc tenant.Context, s *domain.TicketSale) error
	// Delete hard deletes a sale
	Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error)
}
