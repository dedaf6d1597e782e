package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/events"
	"github.com/stagepass/stagepass/internal/repository"
	"github.com/stagepass/stagepass/internal/tenant"
)

// customerService implements the CustomerService interface
type customerService struct {
	customerRepo repository.CustomerRepository
	events       events.Publisher
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo repository.CustomerRepository, publisher events.Publisher) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		events:       publisher,
	}
}

// Create registers a new customer owned by the scope's tenant
func (s *customerService) Create(ctx context.Context, sc tenant.Context, req *dto.CreateCustomerRequest) (*domain.Customer, error) {
	tenantID, ok := sc.TenantID()
	if !ok {
		return nil, tenant.ErrNoTenant
	}
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("customer", msg)
	}

	var shipping *domain.Address
	if req.ShippingAddress != nil {
		addr := req.ShippingAddress.ToDomain()
		shipping = &addr
	}

	now := time.Now()
	c := &domain.Customer{
		ExternalID:      uuid.New().String(),
		TenantID:        tenantID,
		Name:            req.Name,
		BillingAddress:  req.BillingAddress.ToDomain(),
		ShippingAddress: shipping,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "customer", events.TypeCreated, c.ExternalID)

	return c, nil
}

// GetByExternalID retrieves a customer by external id
func (s *customerService) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Customer, error) {
	c, err := s.customerRepo.GetByExternalID(ctx, sc, externalID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound("customer")
	}
	return c, nil
}

// List lists all customers visible under the scope
func (s *customerService) List(ctx context.Context, sc tenant.Context) ([]*domain.Customer, error) {
	return s.customerRepo.List(ctx, sc)
}

// Update applies a partial update to a customer
func (s *customerService) Update(ctx context.Context, sc tenant.Context, externalID string, req *dto.UpdateCustomerRequest) (*domain.Customer, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("customer", msg)
	}

	c, err := s.customerRepo.GetByExternalID(ctx, sc, externalID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound("customer")
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.BillingAddress != nil {
		c.BillingAddress = req.BillingAddress.ToDomain()
	}
	if req.ShippingAddress != nil {
		addr := req.ShippingAddress.ToDomain()
		c.ShippingAddress = &addr
	}

	if err := s.customerRepo.Update(ctx, sc, c); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "customer", events.TypeUpdated, c.ExternalID)

	return c, nil
}

// Delete hard deletes a customer
func (s *customerService) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	deleted, err := s.customerRepo.Delete(ctx, sc, externalID)
	if err != nil {
		return false, err
	}
	if deleted {
		_ = s.events.Publish(ctx, "customer", events.TypeDeleted, externalID)
	}
	return deleted, nil
}
