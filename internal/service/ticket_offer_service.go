package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/events"
	"github.com/stagepass/stagepass/internal/repository"
	"github.com/stagepass/stagepass/internal/tenant"
	"github.com/stagepass/stagepass/pkg/telemetry"
)

// ticketOfferService implements the TicketOfferService interface
type ticketOfferService struct {
	offerRepo repository.TicketOfferRepository
	showRepo  repository.ShowRepository
	events    events.Publisher
}

// NewTicketOfferService creates a new TicketOfferService
func NewTicketOfferService(offerRepo repository.TicketOfferRepository, showRepo repository.ShowRepository, publisher events.Publisher) TicketOfferService {
	return &ticketOfferService{
		offerRepo: offerRepo,
		showRepo:  showRepo,
		events:    publisher,
	}
}

// Create carves a named offer out of a show's ticket count. The allocation is
// checked here against the current sum and re-checked inside the insert
// transaction under a row lock on the show, so two concurrent creations
// cannot both consume the same remaining capacity; the loser gets a conflict.
func (s *ticketOfferService) Create(ctx context.Context, sc tenant.Context, req *dto.CreateTicketOfferRequest) (*domain.TicketOffer, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.ticket_offer.create")
	defer span.End()
	span.SetAttributes(
		attribute.String("show_external_id", req.ShowExternalID),
		attribute.Int("ticket_count", req.TicketCount),
	)

	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("ticket_offer", msg)
	}

	show, err := s.showRepo.GetByExternalID(ctx, sc, req.ShowExternalID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, domain.NewNotFound("show")
	}

	allocated, err := s.offerRepo.SumTicketCountByShowID(ctx, show.ID)
	if err != nil {
		return nil, err
	}
	remaining := show.TicketCount - allocated
	if req.TicketCount > remaining {
		return nil, domain.NewInvalidArgument("ticket_count",
			fmt.Sprintf("exceeds show capacity: %d tickets remaining", remaining))
	}

	now := time.Now()
	offer := &domain.TicketOffer{
		ExternalID:  uuid.New().String(),
		ShowID:      show.ID,
		Name:        req.Name,
		Price:       req.Price,
		TicketCount: req.TicketCount,
		CreatedAt:   now,
		UpdatedAt:   now,

		ShowExternalID: show.ExternalID,
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "ticket_offer", events.TypeCreated, offer.ExternalID)

	return offer, nil
}

// GetByExternalID retrieves an offer by external id
func (s *ticketOfferService) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.TicketOffer, error) {
	offer, err := s.offerRepo.GetByExternalID(ctx, sc, externalID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.NewNotFound("ticket offer")
	}
	return offer, nil
}

// ListByShowExternalID lists all offers for a show
func (s *ticketOfferService) ListByShowExternalID(ctx context.Context, sc tenant.Context, showExternalID string) ([]*domain.TicketOffer, error) {
	show, err := s.showRepo.GetByExternalID(ctx, sc, showExternalID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, domain.NewNotFound("show")
	}
	return s.offerRepo.ListByShowID(ctx, sc, show.ID)
}

// CapacitySummary reports the show's total, allocated and remaining ticket
// counts. Remaining is never negative: creation rejects over-allocation.
func (s *ticketOfferService) CapacitySummary(ctx context.Context, sc tenant.Context, showExternalID string) (*domain.OfferCapacity, error) {
	show, err := s.showRepo.GetByExternalID(ctx, sc, showExternalID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, domain.NewNotFound("show")
	}

	allocated, err := s.offerRepo.SumTicketCountByShowID(ctx, show.ID)
	if err != nil {
		return nil, err
	}

	return &domain.OfferCapacity{
		ShowTicketCount: show.TicketCount,
		Allocated:       allocated,
		Remaining:       show.TicketCount - allocated,
	}, nil
}
