package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/events"
	"github.com/stagepass/stagepass/internal/tenant"
)

type offerFixture struct {
	*showFixture
	offerRepo *MockTicketOfferRepository
	svc       TicketOfferService
}

func newOfferFixture() *offerFixture {
	sf := newShowFixture()
	offerRepo := NewMockTicketOfferRepository(sf.showRepo)
	return &offerFixture{
		showFixture: sf,
		offerRepo:   offerRepo,
		svc:         NewTicketOfferService(offerRepo, sf.showRepo, events.NopPublisher{}),
	}
}

func TestTicketOfferService_Create(t *testing.T) {
	f := newOfferFixture()
	venue := f.addVenue(1, "venue-1", 2000)
	act := f.addAct(1, "act-1")
	f.addShow(venue, act, "show-1", 1000, time.Now().Add(24*time.Hour))

	tenant1 := tenant.Scoped(1)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, tenant1, &dto.CreateTicketOfferRequest{
		ShowExternalID: "show-1",
		Name:           "General Admission",
		Price:          49.50,
		TicketCount:    600,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TicketCount != 600 {
		t.Errorf("expected ticket count 600, got %d", first.TicketCount)
	}

	// 600 + 500 > 1000: rejected, and the message states what is left.
	_, err = f.svc.Create(ctx, tenant1, &dto.CreateTicketOfferRequest{
		ShowExternalID: "show-1",
		Name:           "VIP",
		Price:          120,
		TicketCount:    500,
	})
	if !domain.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("error %q does not state the remaining capacity", err.Error())
	}

	// 600 + 400 fits exactly.
	if _, err := f.svc.Create(ctx, tenant1, &dto.CreateTicketOfferRequest{
		ShowExternalID: "show-1",
		Name:           "VIP",
		Price:          120,
		TicketCount:    400,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := f.svc.CapacitySummary(ctx, tenant1, "show-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.ShowTicketCount != 1000 || summary.Allocated != 1000 || summary.Remaining != 0 {
		t.Errorf("expected summary 1000/1000/0, got %d/%d/%d",
			summary.ShowTicketCount, summary.Allocated, summary.Remaining)
	}
}

func TestTicketOfferService_Create_Validation(t *testing.T) {
	f := newOfferFixture()
	venue := f.addVenue(1, "venue-1", 2000)
	act := f.addAct(1, "act-1")
	f.addShow(venue, act, "show-1", 1000, time.Now().Add(24*time.Hour))

	tests := []struct {
		name string
		req  *dto.CreateTicketOfferRequest
	}{
		{
			name: "zero price",
			req:  &dto.CreateTicketOfferRequest{ShowExternalID: "show-1", Name: "GA", Price: 0, TicketCount: 10},
		},
		{
			name: "negative price",
			req:  &dto.CreateTicketOfferRequest{ShowExternalID: "show-1", Name: "GA", Price: -5, TicketCount: 10},
		},
		{
			name: "zero ticket count",
			req:  &dto.CreateTicketOfferRequest{ShowExternalID: "show-1", Name: "GA", Price: 10, TicketCount: 0},
		},
		{
			name: "missing name",
			req:  &dto.CreateTicketOfferRequest{ShowExternalID: "show-1", Price: 10, TicketCount: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), tenant.Scoped(1), tt.req)
			if !domain.IsInvalidArgument(err) {
				t.Errorf("expected invalid argument, got %v", err)
			}
		})
	}
}

func TestTicketOfferService_Create_ShowUnderOtherTenant(t *testing.T) {
	f := newOfferFixture()
	venue := f.addVenue(1, "venue-1", 2000)
	act := f.addAct(1, "act-1")
	f.addShow(venue, act, "show-1", 1000, time.Now().Add(24*time.Hour))

	_, err := f.svc.Create(context.Background(), tenant.Scoped(2), &dto.CreateTicketOfferRequest{
		ShowExternalID: "show-1",
		Name:           "GA",
		Price:          10,
		TicketCount:    10,
	})
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found for other tenant's show, got %v", err)
	}
}

func TestTicketOfferService_Create_ConcurrentAllocation(t *testing.T) {
	f := newOfferFixture()
	venue := f.addVenue(1, "venue-1", 2000)
	act := f.addAct(1, "act-1")
	f.addShow(venue, act, "show-1", 1000, time.Now().Add(24*time.Hour))

	// A concurrent creation consumes the allocation between the service's
	// check and the insert; the transactional revalidation surfaces it.
	f.offerRepo.forceConflict = true

	_, err := f.svc.Create(context.Background(), tenant.Scoped(1), &dto.CreateTicketOfferRequest{
		ShowExternalID: "show-1",
		Name:           "GA",
		Price:          10,
		TicketCount:    10,
	})
	if !domain.IsConflict(err) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestTicketOfferService_ListByShowExternalID(t *testing.T) {
	f := newOfferFixture()
	venue := f.addVenue(1, "venue-1", 2000)
	act := f.addAct(1, "act-1")
	f.addShow(venue, act, "show-1", 1000, time.Now().Add(24*time.Hour))

	ctx := context.Background()
	tenant1 := tenant.Scoped(1)

	offers, err := f.svc.ListByShowExternalID(ctx, tenant1, "show-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 0 {
		t.Errorf("expected empty list, got %d offers", len(offers))
	}

	if _, err := f.svc.Create(ctx, tenant1, &dto.CreateTicketOfferRequest{
		ShowExternalID: "show-1",
		Name:           "GA",
		Price:          25,
		TicketCount:    100,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	offers, err = f.svc.ListByShowExternalID(ctx, tenant1, "show-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 1 {
		t.Errorf("expected 1 offer, got %d", len(offers))
	}

	_, err = f.svc.ListByShowExternalID(ctx, tenant.Scoped(2), "show-1")
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found under other tenant, got %v", err)
	}
}

func TestTicketOfferService_GetByExternalID_Isolation(t *testing.T) {
	f := newOfferFixture()
	venue := f.addVenue(1, "venue-1", 2000)
	act := f.addAct(1, "act-1")
	f.addShow(venue, act, "show-1", 1000, time.Now().Add(24*time.Hour))

	offer, err := f.svc.Create(context.Background(), tenant.Scoped(1), &dto.CreateTicketOfferRequest{
		ShowExternalID: "show-1",
		Name:           "GA",
		Price:          25,
		TicketCount:    100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Offers inherit their show's tenant through the venue chain.
	_, err = f.svc.GetByExternalID(context.Background(), tenant.Scoped(2), offer.ExternalID)
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found under other tenant, got %v", err)
	}
	if _, err := f.svc.GetByExternalID(context.Background(), tenant.Scoped(1), offer.ExternalID); err != nil {
		t.Errorf("unexpected error under owning tenant: %v", err)
	}
}
