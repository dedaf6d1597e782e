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

// venueService implements the VenueService interface
type venueService struct {
	venueRepo repository.VenueRepository
	events    events.Publisher
}

// NewVenueService creates a new VenueService
func NewVenueService(venueRepo repository.VenueRepository, publisher events.Publisher) VenueService {
	return &venueService{
		venueRepo: venueRepo,
		events:    publisher,
	}
}

// Create creates a new venue owned by the scope's tenant
func (s *venueService) Create(ctx context.Context, sc tenant.Context, req *dto.CreateVenueRequest) (*domain.Venue, error) {
	tenantID, ok := sc.TenantID()
	if !ok {
		return nil, tenant.ErrNoTenant
	}
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("venue", msg)
	}

	now := time.Now()
	v := &domain.Venue{
		ExternalID:      uuid.New().String(),
		TenantID:        tenantID,
		Name:            req.Name,
		Address:         req.Address,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		SeatingCapacity: req.SeatingCapacity,
		Description:     req.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.venueRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "venue", events.TypeCreated, v.ExternalID)

	return v, nil
}

// GetByExternalID retrieves a venue by external id
func (s *venueService) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Venue, error) {
	v, err := s.venueRepo.GetByExternalID(ctx, sc, externalID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.NewNotFound("venue")
	}
	return v, nil
}

// List lists all venues visible under the scope
func (s *venueService) List(ctx context.Context, sc tenant.Context) ([]*domain.Venue, error) {
	return s.venueRepo.List(ctx, sc)
}

// Update applies a partial update to a venue
func (s *venueService) Update(ctx context.Context, sc tenant.Context, externalID string, req *dto.UpdateVenueRequest) (*domain.Venue, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("venue", msg)
	}

	v, err := s.venueRepo.GetByExternalID(ctx, sc, externalID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.NewNotFound("venue")
	}

	if req.Name != "" {
		v.Name = req.Name
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.Latitude != nil {
		v.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		v.Longitude = req.Longitude
	}
	if req.SeatingCapacity != nil {
		v.SeatingCapacity = *req.SeatingCapacity
	}
	if req.Description != nil {
		v.Description = *req.Description
	}

	if err := s.venueRepo.Update(ctx, sc, v); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "venue", events.TypeUpdated, v.ExternalID)

	return v, nil
}

// Delete hard deletes a venue; dependent shows cascade
func (s *venueService) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	deleted, err := s.venueRepo.Delete(ctx, sc, externalID)
	if err != nil {
		return false, err
	}
	if deleted {
		_ = s.events.Publish(ctx, "venue", events.TypeDeleted, externalID)
	}
	return deleted, nil
}
