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

// ticketSaleService implements the TicketSaleService interface
type ticketSaleService struct {
	saleRepo repository.TicketSaleRepository
	showRepo repository.ShowRepository
	events   events.Publisher
}

// NewTicketSaleService creates a new TicketSaleService
func NewTicketSaleService(saleRepo repository.TicketSaleRepository, showRepo repository.ShowRepository, publisher events.Publisher) TicketSaleService {
	return &ticketSaleService{
		saleRepo: saleRepo,
		showRepo: showRepo,
		events:   publisher,
	}
}

// Create records a sale against a show. Quantity is recorded as given; sales
// are not reconciled against offer capacity.
func (s *ticketSaleService) Create(ctx context.Context, sc tenant.Context, req *dto.CreateTicketSaleRequest) (*domain.TicketSale, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("ticket_sale", msg)
	}

	show, err := s.showRepo.GetByExternalID(ctx, sc, req.ShowExternalID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, domain.NewNotFound("show")
	}

	now := time.Now()
	sale := &domain.TicketSale{
		ExternalID: uuid.New().String(),
		ShowID:     show.ID,
		Quantity:   req.Quantity,
		CreatedAt:  now,
		UpdatedAt:  now,

		ShowExternalID: show.ExternalID,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "ticket_sale", events.TypeCreated, sale.ExternalID)

	return sale, nil
}

// GetByExternalID retrieves a sale by external id
func (s *ticketSaleService) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.TicketSale, error) {
	sale, err := s.saleRepo.GetByExternalID(ctx, sc, externalID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NewNotFound("ticket sale")
	}
	return sale, nil
}

// ListByShowExternalID lists all sales for a show
func (s *ticketSaleService) ListByShowExternalID(ctx context.Context, sc tenant.Context, showExternalID string) ([]*domain.TicketSale, error) {
	show, err := s.showRepo.GetByExternalID(ctx, sc, showExternalID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, domain.NewNotFound("show")
	}
	return s.saleRepo.ListByShowID(ctx, sc, show.ID)
}

// Update applies a partial update to a sale
func (s *ticketSaleService) Update(ctx context.Context, sc tenant.Context, externalID string, req *dto.UpdateTicketSaleRequest) (*domain.TicketSale, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("ticket_sale", msg)
	}

	sale, err := s.saleRepo.GetByExternalID(ctx, sc, externalID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NewNotFound("ticket sale")
	}

	if req.Quantity != nil {
		sale.Quantity = *req.Quantity
	}

	if err := s.saleRepo.Update(ctx, sc, sale); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "ticket_sale", events.TypeUpdated, sale.ExternalID)

	return sale, nil
}

// Delete hard deletes a sale
func (s *ticketSaleService) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	deleted, err := s.saleRepo.Delete(ctx, sc, externalID)
	if err != nil {
		return false, err
	}
	if deleted {
		_ = s.events.Publish(ctx, "ticket_sale", events.TypeDeleted, externalID)
	}
	return deleted, nil
}
