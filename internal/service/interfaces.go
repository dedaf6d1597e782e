package service

import (
	"context"
	"time"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/tenant"
)

// Every scoped operation takes the caller's tenant scope explicitly. Handlers
// resolve the scope from the request once and pass it down; services never
// reach into ambient state to discover the tenant.

// TenantService defines the interface for tenant provisioning. Tenant
// operations require the unscoped administrative context.
type TenantService interface {
	// Create provisions a new tenant
	Create(ctx context.Context, sc tenant.Context, req *dto.CreateTenantRequest) (*domain.Tenant, error)
	// GetByExternalID retrieves a tenant by external id
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Tenant, error)
	// GetBySlug retrieves a tenant by slug
	GetBySlug(ctx context.Context, sc tenant.Context, slug string) (*domain.Tenant, error)
	// List lists all tenants
	List(ctx context.Context, sc tenant.Context) ([]*domain.Tenant, error)
	// VerifyActive reports whether a tenant exists and is active
	VerifyActive(ctx context.Context, tenantID int64) (bool, error)
}

// VenueService defines the interface for venue operations
type VenueService interface {
	// Create creates a new venue owned by the scope's tenant
	Create(ctx context.Context, sc tenant.Context, req *dto.CreateVenueRequest) (*domain.Venue, error)
	// GetByExternalID retrieves a venue by external id
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Venue, error)
	// List lists all venues visible under the scope
	List(ctx context.Context, sc tenant.Context) ([]*domain.Venue, error)
	// Update applies a partial update to a venue
	Update(ctx context.Context, sc tenant.Context, externalID string, req *dto.UpdateVenueRequest) (*domain.Venue, error)
	// Delete hard deletes a venue; dependent shows cascade. Returns whether a
	// row existed under the scope.
	Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error)
}

// ActService defines the interface for act operations
type ActService interface {
	// Create creates a new act owned by the scope's tenant
	Create(ctx context.Context, sc tenant.Context, req *dto.CreateActRequest) (*domain.Act, error)
	// GetByExternalID retrieves an act by external id
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Act, error)
	// List lists all acts visible under the scope
	List(ctx context.Context, sc tenant.Context) ([]*domain.Act, error)
	// Update applies a partial update to an act
	Update(ctx context.Context, sc tenant.Context, externalID string, req *dto.UpdateActRequest) (*domain.Act, error)
	// Delete hard deletes an act; dependent shows cascade
	Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error)
}

// CustomerService defines the interface for customer operations
type CustomerService interface {
	// Create registers a new customer owned by the scope's tenant
	Create(ctx context.Context, sc tenant.Context, req *dto.CreateCustomerRequest) (*domain.Customer, error)
	// GetByExternalID retrieves a customer by external id
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Customer, error)
	// List lists all customers visible under the scope
	List(ctx context.Context, sc tenant.Context) ([]*domain.Customer, error)
	// Update applies a partial update to a customer
	Update(ctx context.Context, sc tenant.Context, externalID string, req *dto.UpdateCustomerRequest) (*domain.Customer, error)
	// Delete hard deletes a customer
	Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error)
}

// ShowService defines the interface for show scheduling
type ShowService interface {
	// Create schedules a show after resolving its act and venue under the
	// scope and validating capacity and start time
	Create(ctx context.Context, sc tenant.Context, req *dto.CreateShowRequest) (*domain.Show, error)
	// GetByExternalID retrieves a show by external id
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Show, error)
	// ListByActExternalID lists all shows referencing the act
	ListByActExternalID(ctx context.Context, sc tenant.Context, actExternalID string) ([]*domain.Show, error)
	// Update applies a partial update to a show's ticket count or start time
	Update(ctx context.Context, sc tenant.Context, externalID string, req *dto.UpdateShowRequest) (*domain.Show, error)
	// Nearby returns shows at the venue starting within 48 hours either side
	// of the reference time, boundary inclusive, ascending by start time,
	// together with a count summary message
	Nearby(ctx context.Context, sc tenant.Context, venueExternalID string, referenceTime time.Time) ([]*domain.Show, string, error)
	// Delete hard deletes a show; offers and sales cascade. Returns whether a
	// row existed under the scope.
	Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error)
}

// TicketOfferService defines the interface for ticket offer allocation
type TicketOfferService interface {
	// Create carves a named offer out of a show's ticket count after
	// validating the allocation fits the remaining capacity
	Create(ctx context.Context, sc tenant.Context, req *dto.CreateTicketOfferRequest) (*domain.TicketOffer, error)
	// GetByExternalID retrieves an offer by external id
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.TicketOffer, error)
	// ListByShowExternalID lists all offers for a show
	ListByShowExternalID(ctx context.Context, sc tenant.Context, showExternalID string) ([]*domain.TicketOffer, error)
	// CapacitySummary reports the show's total, allocated and remaining
	// ticket counts
	CapacitySummary(ctx context.Context, sc tenant.Context, showExternalID string) (*domain.OfferCapacity, error)
}

// TicketSaleService defines the interface for recording ticket sales
type TicketSaleService interface {
	// Create records a sale against a show resolved under the scope
	Create(ctx context.Context, sc tenant.Context, req *dto.CreateTicketSaleRequest) (*domain.TicketSale, error)
	// GetByExternalID retrieves a sale by external id
	GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.TicketSale, error)
	// ListByShowExternalID lists all sales for a show
	ListByShowExternalID(ctx context.Context, sc tenant.Context, showExternalID string) ([]*domain.TicketSale, error)
	// Update applies a partial update to a sale
	Update(ctx context.Context, sc tenant.Context, externalID string, req *dto.UpdateTicketSaleRequest) (*domain.TicketSale, error)
	// Delete hard deletes a sale
	Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error)
}
