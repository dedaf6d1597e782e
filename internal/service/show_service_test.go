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

type showFixture struct {
	venueRepo *MockVenueRepository
	actRepo   *MockActRepository
	showRepo  *MockShowRepository
	offerRepo *MockTicketOfferRepository
	svc       ShowService
}

func newShowFixture() *showFixture {
	venueRepo := NewMockVenueRepository()
	actRepo := NewMockActRepository()
	showRepo := NewMockShowRepository(venueRepo)
	offerRepo := NewMockTicketOfferRepository(showRepo)
	return &showFixture{
		venueRepo: venueRepo,
		actRepo:   actRepo,
		showRepo:  showRepo,
		offerRepo: offerRepo,
		svc:       NewShowService(showRepo, venueRepo, actRepo, offerRepo, events.NopPublisher{}),
	}
}

func (f *showFixture) addVenue(tenantID int64, externalID string, capacity int) *domain.Venue {
	now := time.Now()
	v := &domain.Venue{
		ExternalID:      externalID,
		TenantID:        tenantID,
		Name:            "Venue " + externalID,
		SeatingCapacity: capacity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	_ = f.venueRepo.Create(context.Background(), v)
	return v
}

func (f *showFixture) addAct(tenantID int64, externalID string) *domain.Act {
	now := time.Now()
	a := &domain.Act{
		ExternalID: externalID,
		TenantID:   tenantID,
		Name:       "Act " + externalID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_ = f.actRepo.Create(context.Background(), a)
	return a
}

func (f *showFixture) addShow(venue *domain.Venue, act *domain.Act, externalID string, ticketCount int, startTime time.Time) *domain.Show {
	now := time.Now()
	s := &domain.Show{
		ExternalID:      externalID,
		VenueID:         venue.ID,
		ActID:           act.ID,
		TicketCount:     ticketCount,
		StartTime:       startTime,
		CreatedAt:       now,
		UpdatedAt:       now,
		VenueExternalID: venue.ExternalID,
		VenueName:       venue.Name,
		ActExternalID:   act.ExternalID,
		ActName:         act.Name,
	}
	_ = f.showRepo.Create(context.Background(), s)
	return s
}

func TestShowService_Create(t *testing.T) {
	f := newShowFixture()
	f.addVenue(1, "venue-1", 100)
	f.addAct(1, "act-1")
	f.addVenue(2, "venue-2", 100)
	f.addAct(2, "act-2")

	tenant1 := tenant.Scoped(1)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name        string
		sc          tenant.Context
		req         *dto.CreateShowRequest
		wantErr     func(error) bool
		wantMessage string
	}{
		{
			name: "valid request",
			sc:   tenant1,
			req: &dto.CreateShowRequest{
				ActExternalID:   "act-1",
				VenueExternalID: "venue-1",
				TicketCount:     50,
				StartTime:       future,
			},
		},
		{
			name: "ticket count exceeds venue capacity",
			sc:   tenant1,
			req: &dto.CreateShowRequest{
				ActExternalID:   "act-1",
				VenueExternalID: "venue-1",
				TicketCount:     500,
				StartTime:       future,
			},
			wantErr:     domain.IsInvalidArgument,
			wantMessage: "100",
		},
		{
			name: "start time in the past",
			sc:   tenant1,
			req: &dto.CreateShowRequest{
				ActExternalID:   "act-1",
				VenueExternalID: "venue-1",
				TicketCount:     50,
				StartTime:       time.Now().Add(-time.Hour),
			},
			wantErr: domain.IsInvalidArgument,
		},
		{
			name: "venue owned by another tenant",
			sc:   tenant1,
			req: &dto.CreateShowRequest{
				ActExternalID:   "act-1",
				VenueExternalID: "venue-2",
				TicketCount:     50,
				StartTime:       future,
			},
			wantErr: domain.IsNotFound,
		},
		{
			name: "act owned by another tenant",
			sc:   tenant1,
			req: &dto.CreateShowRequest{
				ActExternalID:   "act-2",
				VenueExternalID: "venue-1",
				TicketCount:     50,
				StartTime:       future,
			},
			wantErr: domain.IsNotFound,
		},
		{
			name: "unknown venue",
			sc:   tenant1,
			req: &dto.CreateShowRequest{
				ActExternalID:   "act-1",
				VenueExternalID: "no-such-venue",
				TicketCount:     50,
				StartTime:       future,
			},
			wantErr: domain.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			show, err := f.svc.Create(context.Background(), tt.sc, tt.req)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !tt.wantErr(err) {
					t.Errorf("wrong error kind: %v", err)
				}
				if tt.wantMessage != "" && !strings.Contains(err.Error(), tt.wantMessage) {
					t.Errorf("error %q does not mention %q", err.Error(), tt.wantMessage)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if show.ExternalID == "" {
				t.Error("expected external id to be assigned")
			}
			if show.VenueName != "Venue venue-1" || show.ActName != "Act act-1" {
				t.Errorf("projection fields not populated: %q / %q", show.VenueName, show.ActName)
			}
		})
	}
}

func TestShowService_Create_MismatchedTenantsUnderAdminScope(t *testing.T) {
	f := newShowFixture()
	f.addVenue(1, "venue-1", 100)
	f.addAct(2, "act-2")

	_, err := f.svc.Create(context.Background(), tenant.Unscoped(), &dto.CreateShowRequest{
		ActExternalID:   "act-2",
		VenueExternalID: "venue-1",
		TicketCount:     10,
		StartTime:       time.Now().Add(24 * time.Hour),
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !domain.IsInvalidArgument(err) {
		t.Errorf("wrong error kind: %v", err)
	}
}

func TestShowService_GetByExternalID(t *testing.T) {
	f := newShowFixture()
	venue := f.addVenue(1, "venue-1", 100)
	act := f.addAct(1, "act-1")
	f.addShow(venue, act, "show-1", 50, time.Now().Add(24*time.Hour))

	got, err := f.svc.GetByExternalID(context.Background(), tenant.Scoped(1), "show-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reads are idempotent: a second lookup with no intervening write returns
	// the identical projection.
	again, err := f.svc.GetByExternalID(context.Background(), tenant.Scoped(1), "show-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != *again {
		t.Error("expected identical projections on repeated read")
	}

	// Another tenant's scope sees it exactly like a missing row.
	_, err = f.svc.GetByExternalID(context.Background(), tenant.Scoped(2), "show-1")
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found under other tenant, got %v", err)
	}

	// The unscoped administrative context sees everything.
	if _, err := f.svc.GetByExternalID(context.Background(), tenant.Unscoped(), "show-1"); err != nil {
		t.Errorf("unexpected error under admin scope: %v", err)
	}
}

func TestShowService_ListByActExternalID(t *testing.T) {
	f := newShowFixture()
	venue := f.addVenue(1, "venue-1", 100)
	act := f.addAct(1, "act-1")
	f.addShow(venue, act, "show-1", 50, time.Now().Add(24*time.Hour))
	f.addShow(venue, act, "show-2", 30, time.Now().Add(48*time.Hour))

	shows, err := f.svc.ListByActExternalID(context.Background(), tenant.Scoped(1), "act-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shows) != 2 {
		t.Errorf("expected 2 shows, got %d", len(shows))
	}

	// The act does not resolve under another tenant, so the whole listing is
	// a not found, not an empty list.
	_, err = f.svc.ListByActExternalID(context.Background(), tenant.Scoped(2), "act-1")
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found under other tenant, got %v", err)
	}
}

func TestShowService_Nearby(t *testing.T) {
	f := newShowFixture()
	venue := f.addVenue(1, "venue-1", 1000)
	act := f.addAct(1, "act-1")

	ref := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	f.addShow(venue, act, "at-minus-49h", 10, ref.Add(-49*time.Hour))
	f.addShow(venue, act, "at-minus-48h", 10, ref.Add(-48*time.Hour))
	f.addShow(venue, act, "at-ref", 10, ref)
	f.addShow(venue, act, "at-plus-48h", 10, ref.Add(48*time.Hour))
	f.addShow(venue, act, "at-plus-48h-1s", 10, ref.Add(48*time.Hour+time.Second))

	shows, message, err := f.svc.Nearby(context.Background(), tenant.Scoped(1), "venue-1", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shows) != 3 {
		t.Fatalf("expected 3 shows in window, got %d", len(shows))
	}
	// Boundary is closed: exactly 48h away is in, one second past is out.
	want := []string{"at-minus-48h", "at-ref", "at-plus-48h"}
	for i, s := range shows {
		if s.ExternalID != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], s.ExternalID)
		}
	}
	if message != "3 shows found" {
		t.Errorf("expected message %q, got %q", "3 shows found", message)
	}
}

func TestShowService_Nearby_EmptyWindow(t *testing.T) {
	f := newShowFixture()
	f.addVenue(1, "venue-1", 1000)

	ref := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	shows, message, err := f.svc.Nearby(context.Background(), tenant.Scoped(1), "venue-1", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shows) != 0 {
		t.Errorf("expected no shows, got %d", len(shows))
	}
	if message != "no shows found" {
		t.Errorf("expected message %q, got %q", "no shows found", message)
	}
}

func TestShowService_Nearby_OtherTenant(t *testing.T) {
	f := newShowFixture()
	f.addVenue(1, "venue-1", 1000)

	_, _, err := f.svc.Nearby(context.Background(), tenant.Scoped(2), "venue-1", time.Now())
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found for other tenant's venue, got %v", err)
	}
}

func TestShowService_Update(t *testing.T) {
	f := newShowFixture()
	venue := f.addVenue(1, "venue-1", 100)
	act := f.addAct(1, "act-1")
	f.addShow(venue, act, "show-1", 50, time.Now().Add(24*time.Hour))

	tenant1 := tenant.Scoped(1)

	newCount := 80
	show, err := f.svc.Update(context.Background(), tenant1, "show-1", &dto.UpdateShowRequest{TicketCount: &newCount})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if show.TicketCount != 80 {
		t.Errorf("expected ticket count 80, got %d", show.TicketCount)
	}

	tooMany := 200
	_, err = f.svc.Update(context.Background(), tenant1, "show-1", &dto.UpdateShowRequest{TicketCount: &tooMany})
	if !domain.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if !strings.Contains(err.Error(), "100") {
		t.Errorf("error %q does not mention the capacity bound", err.Error())
	}

	past := time.Now().Add(-time.Hour)
	_, err = f.svc.Update(context.Background(), tenant1, "show-1", &dto.UpdateShowRequest{StartTime: &past})
	if !domain.IsInvalidArgument(err) {
		t.Errorf("expected invalid argument for past start time, got %v", err)
	}

	_, err = f.svc.Update(context.Background(), tenant.Scoped(2), "show-1", &dto.UpdateShowRequest{TicketCount: &newCount})
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found under other tenant, got %v", err)
	}
}

func TestShowService_UpdateCannotShrinkBelowOfferedTotal(t *testing.T) {
	f := newShowFixture()
	venue := f.addVenue(1, "venue-1", 2000)
	act := f.addAct(1, "act-1")
	show := f.addShow(venue, act, "show-1", 1000, time.Now().Add(24*time.Hour))

	offer := &domain.TicketOffer{
		ExternalID:  "offer-1",
		ShowID:      show.ID,
		Name:        "General Admission",
		Price:       25,
		TicketCount: 600,
	}
	if err := f.offerRepo.Create(context.Background(), offer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tenant1 := tenant.Scoped(1)

	// 600 tickets are offered, so the count cannot drop below that.
	shrunk := 500
	_, err := f.svc.Update(context.Background(), tenant1, "show-1", &dto.UpdateShowRequest{TicketCount: &shrunk})
	if !domain.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if !strings.Contains(err.Error(), "600") {
		t.Errorf("error %q does not mention the allocated total", err.Error())
	}

	// Shrinking down to exactly the offered total keeps remaining at zero.
	exact := 600
	show, err = f.svc.Update(context.Background(), tenant1, "show-1", &dto.UpdateShowRequest{TicketCount: &exact})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if show.TicketCount != 600 {
		t.Errorf("expected ticket count 600, got %d", show.TicketCount)
	}
}

func TestShowService_Delete(t *testing.T) {
	f := newShowFixture()
	venue := f.addVenue(1, "venue-1", 100)
	act := f.addAct(1, "act-1")
	f.addShow(venue, act, "show-1", 50, time.Now().Add(24*time.Hour))

	// Another tenant cannot delete it, and learns nothing from trying.
	deleted, err := f.svc.Delete(context.Background(), tenant.Scoped(2), "show-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected delete to report no row under other tenant")
	}

	deleted, err = f.svc.Delete(context.Background(), tenant.Scoped(1), "show-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report a row existed")
	}

	deleted, _ = f.svc.Delete(context.Background(), tenant.Scoped(1), "show-1")
	if deleted {
		t.Error("expected second delete to report no row")
	}
}
