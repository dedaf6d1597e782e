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

// actService implements the ActService interface
type actService struct {
	actRepo repository.ActRepository
	events  events.Publisher
}

// NewActService creates a new ActService
func NewActService(actRepo repository.ActRepository, publisher events.Publisher) ActService {
	return &actService{
		actRepo: actRepo,
		events:  publisher,
	}
}

// Create creates a new act owned by the scope's tenant
func (s *actService) Create(ctx context.Context, sc tenant.Context, req *dto.CreateActRequest) (*domain.Act, error) {
	tenantID, ok := sc.TenantID()
	if !ok {
		return nil, tenant.ErrNoTenant
	}
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("act", msg)
	}

	now := time.Now()
	a := &domain.Act{
		ExternalID: uuid.New().String(),
		TenantID:   tenantID,
		Name:       req.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.actRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "act", events.TypeCreated, a.ExternalID)

	return a, nil
}

// GetByExternalID retrieves an act by external id
func (s *actService) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Act, error) {
	a, err := s.actRepo.GetByExternalID(ctx, sc, externalID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NewNotFound("act")
	}
	return a, nil
}

// List lists all acts visible under the scope
func (s *actService) List(ctx context.Context, sc tenant.Context) ([]*domain.Act, error) {
	return s.actRepo.List(ctx, sc)
}

// Update applies a partial update to an act
func (s *actService) Update(ctx context.Context, sc tenant.Context, externalID string, req *dto.UpdateActRequest) (*domain.Act, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("act", msg)
	}

	a, err := s.actRepo.GetByExternalID(ctx, sc, externalID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NewNotFound("act")
	}

	if req.Name != "" {
		a.Name = req.Name
	}

	if err := s.actRepo.Update(ctx, sc, a); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "act", events.TypeUpdated, a.ExternalID)

	return a, nil
}

// Delete hard deletes an act; dependent shows cascade
func (s *actService) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	deleted, err := s.actRepo.Delete(ctx, sc, externalID)
	if err != nil {
		return false, err
	}
	if deleted {
		_ = s.events.Publish(ctx, "act", events.TypeDeleted, externalID)
	}
	return deleted, nil
}
