package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/events"
	"github.com/stagepass/stagepass/internal/repository"
	"github.com/stagepass/stagepass/internal/tenant"
)

// ErrAdminScopeRequired is returned when a tenant-bound scope attempts an
// operation reserved for the unscoped administrative context.
var ErrAdminScopeRequired = errors.New("administrative scope required")

// tenantService implements the TenantService interface
type tenantService struct {
	tenantRepo repository.TenantRepository
	events     events.Publisher
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo repository.TenantRepository, publisher events.Publisher) TenantService {
	return &tenantService{
		tenantRepo: tenantRepo,
		events:     publisher,
	}
}

// Create provisions a new tenant
func (s *tenantService) Create(ctx context.Context, sc tenant.Context, req *dto.CreateTenantRequest) (*domain.Tenant, error) {
	if !sc.IsUnscoped() {
		return nil, ErrAdminScopeRequired
	}
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("tenant", msg)
	}

	exists, err := s.tenantRepo.SlugExists(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflict("tenant slug already in use: " + req.Slug)
	}

	now := time.Now()
	t := &domain.Tenant{
		ExternalID: uuid.New().String(),
		Name:       req.Name,
		Slug:       req.Slug,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.tenantRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "tenant", events.TypeCreated, t.ExternalID)

	return t, nil
}

// GetByExternalID retrieves a tenant by external id
func (s *tenantService) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Tenant, error) {
	if !sc.IsUnscoped() {
		return nil, ErrAdminScopeRequired
	}
	t, err := s.tenantRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("tenant")
	}
	return t, nil
}

// GetBySlug retrieves a tenant by slug
func (s *tenantService) GetBySlug(ctx context.Context, sc tenant.Context, slug string) (*domain.Tenant, error) {
	if !sc.IsUnscoped() {
		return nil, ErrAdminScopeRequired
	}
	t, err := s.tenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("tenant")
	}
	return t, nil
}

// List lists all tenants
func (s *tenantService) List(ctx context.Context, sc tenant.Context) ([]*domain.Tenant, error) {
	if !sc.IsUnscoped() {
		return nil, ErrAdminScopeRequired
	}
	return s.tenantRepo.List(ctx)
}

// VerifyActive reports whether the tenant exists and is active. The request
// scoping middleware calls it on every tenant-bound request, so sessions
// issued before a tenant was deactivated stop working immediately.
func (s *tenantService) VerifyActive(ctx context.Context, tenantID int64) (bool, error) {
	t, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return false, err
	}
	return t != nil && t.IsActive, nil
}
