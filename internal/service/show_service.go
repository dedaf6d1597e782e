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

// nearbyWindow is the interval either side of the reference time within which
// shows at the same venue are reported, boundary inclusive.
const nearbyWindow = 48 * time.Hour

// showService implements the ShowService interface
type showService struct {
	showRepo  repository.ShowRepository
	venueRepo repository.VenueRepository
	actRepo   repository.ActRepository
	offerRepo repository.TicketOfferRepository
	events    events.Publisher
}

// NewShowService creates a new ShowService
func NewShowService(showRepo repository.ShowRepository, venueRepo repository.VenueRepository, actRepo repository.ActRepository, offerRepo repository.TicketOfferRepository, publisher events.Publisher) ShowService {
	return &showService{
		showRepo:  showRepo,
		venueRepo: venueRepo,
		actRepo:   actRepo,
		offerRepo: offerRepo,
		events:    publisher,
	}
}

// Create schedules a show. The act and venue are resolved under the caller's
// scope, so a request cannot bind to another tenant's act or venue even if it
// knows the external id: both resolve as not found.
func (s *showService) Create(ctx context.Context, sc tenant.Context, req *dto.CreateShowRequest) (*domain.Show, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.show.create")
	defer span.End()
	span.SetAttributes(
		attribute.String("venue_external_id", req.VenueExternalID),
		attribute.String("act_external_id", req.ActExternalID),
		attribute.Int("ticket_count", req.TicketCount),
	)

	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("show", msg)
	}

	act, err := s.actRepo.GetByExternalID(ctx, sc, req.ActExternalID)
	if err != nil {
		return nil, err
	}
	if act == nil {
		return nil, domain.NewNotFound("act")
	}

	venue, err := s.venueRepo.GetByExternalID(ctx, sc, req.VenueExternalID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, domain.NewNotFound("venue")
	}

	// Under a tenant-bound scope both lookups already resolved to the same
	// tenant. The unscoped administrative context sees everything, so the
	// pairing still has to be checked.
	if act.TenantID != venue.TenantID {
		return nil, domain.NewInvalidArgument("act_external_id", "act and venue must belong to the same tenant")
	}

	if !req.StartTime.After(time.Now()) {
		return nil, domain.NewInvalidArgument("start_time", "must be in the future")
	}
	if req.TicketCount > venue.SeatingCapacity {
		return nil, domain.NewInvalidArgument("ticket_count",
			fmt.Sprintf("exceeds venue seating capacity of %d", venue.SeatingCapacity))
	}

	now := time.Now()
	show := &domain.Show{
		ExternalID:  uuid.New().String(),
		VenueID:     venue.ID,
		ActID:       act.ID,
		TicketCount: req.TicketCount,
		StartTime:   req.StartTime,
		CreatedAt:   now,
		UpdatedAt:   now,

		VenueExternalID: venue.ExternalID,
		VenueName:       venue.Name,
		ActExternalID:   act.ExternalID,
		ActName:         act.Name,
	}

	if err := s.showRepo.Create(ctx, show); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "show", events.TypeCreated, show.ExternalID)

	return show, nil
}

// GetByExternalID retrieves a show by external id
func (s *showService) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Show, error) {
	show, err := s.showRepo.GetByExternalID(ctx, sc, externalID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, domain.NewNotFound("show")
	}
	return show, nil
}

// ListByActExternalID lists all shows referencing the act
func (s *showService) ListByActExternalID(ctx context.Context, sc tenant.Context, actExternalID string) ([]*domain.Show, error) {
	act, err := s.actRepo.GetByExternalID(ctx, sc, actExternalID)
	if err != nil {
		return nil, err
	}
	if act == nil {
		return nil, domain.NewNotFound("act")
	}
	return s.showRepo.ListByActID(ctx, sc, act.ID)
}

// Update applies a partial update to a show. The venue and act references are
// immutable; only the ticket count and start time can change, under the same
// bounds as creation.
func (s *showService) Update(ctx context.Context, sc tenant.Context, externalID string, req *dto.UpdateShowRequest) (*domain.Show, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewInvalidArgument("show", msg)
	}

	show, err := s.showRepo.GetByExternalID(ctx, sc, externalID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, domain.NewNotFound("show")
	}

	if req.TicketCount != nil {
		venue, err := s.venueRepo.GetByExternalID(ctx, sc, show.VenueExternalID)
		if err != nil {
			return nil, err
		}
		if venue == nil {
			return nil, domain.NewNotFound("venue")
		}
		if *req.TicketCount > venue.SeatingCapacity {
			return nil, domain.NewInvalidArgument("ticket_count",
				fmt.Sprintf("exceeds venue seating capacity of %d", venue.SeatingCapacity))
		}
		if *req.TicketCount < show.TicketCount {
			// Shrinking below the offered total would leave remaining
			// capacity negative.
			allocated, err := s.offerRepo.SumTicketCountByShowID(ctx, show.ID)
			if err != nil {
				return nil, err
			}
			if *req.TicketCount < allocated {
				return nil, domain.NewInvalidArgument("ticket_count",
					fmt.Sprintf("below the %d tickets already allocated to offers", allocated))
			}
		}
		show.TicketCount = *req.TicketCount
	}
	if req.StartTime != nil {
		if !req.StartTime.After(time.Now()) {
			return nil, domain.NewInvalidArgument("start_time", "must be in the future")
		}
		show.StartTime = *req.StartTime
	}

	if err := s.showRepo.Update(ctx, sc, show); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, "show", events.TypeUpdated, show.ExternalID)

	return show, nil
}

// Nearby returns shows at the venue whose start time falls within 48 hours
// either side of the reference time. The comparison is on absolute instants,
// so the offsets attached to stored timestamps do not affect the result.
func (s *showService) Nearby(ctx context.Context, sc tenant.Context, venueExternalID string, referenceTime time.Time) ([]*domain.Show, string, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.show.nearby")
	defer span.End()
	span.SetAttributes(
		attribute.String("venue_external_id", venueExternalID),
		attribute.String("reference_time", referenceTime.UTC().Format(time.RFC3339)),
	)

	venue, err := s.venueRepo.GetByExternalID(ctx, sc, venueExternalID)
	if err != nil {
		return nil, "", err
	}
	if venue == nil {
		return nil, "", domain.NewNotFound("venue")
	}

	from := referenceTime.Add(-nearbyWindow)
	to := referenceTime.Add(nearbyWindow)
	shows, err := s.showRepo.ListByVenueWithin(ctx, sc, venue.ID, from, to)
	if err != nil {
		return nil, "", err
	}

	message := "no shows found"
	if len(shows) > 0 {
		message = fmt.Sprintf("%d shows found", len(shows))
	}
	return shows, message, nil
}

// Delete hard deletes a show; ticket offers and sales cascade
func (s *showService) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	deleted, err := s.showRepo.Delete(ctx, sc, externalID)
	if err != nil {
		return false, err
	}
	if deleted {
		_ = s.events.Publish(ctx, "show", events.TypeDeleted, externalID)
	}
	return deleted, nil
}
