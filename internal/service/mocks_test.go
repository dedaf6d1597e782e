package service

import (
	"context"
	"sort"
	"time"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/tenant"
)

// The mocks mirror the scoping behavior of the Postgres repositories: every
// lookup checks visibility against the caller's scope, and a row owned by
// another tenant is reported exactly like a missing row.

func visibleTo(sc tenant.Context, tenantID int64) bool {
	if sc.IsUnscoped() {
		return true
	}
	id, _ := sc.TenantID()
	return id == tenantID
}

// MockTenantRepository is a map-backed TenantRepository
type MockTenantRepository struct {
	tenants map[string]*domain.Tenant
	nextID  int64
}

func NewMockTenantRepository() *MockTenantRepository {
	return &MockTenantRepository{tenants: make(map[string]*domain.Tenant)}
}

func (m *MockTenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	m.nextID++
	t.ID = m.nextID
	m.tenants[t.ExternalID] = t
	return nil
}

func (m *MockTenantRepository) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	for _, t := range m.tenants {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (m *MockTenantRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Tenant, error) {
	t, ok := m.tenants[externalID]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (m *MockTenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	for _, t := range m.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, nil
}

func (m *MockTenantRepository) List(ctx context.Context) ([]*domain.Tenant, error) {
	var tenants []*domain.Tenant
	for _, t := range m.tenants {
		tenants = append(tenants, t)
	}
	return tenants, nil
}

func (m *MockTenantRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	t, _ := m.GetBySlug(context.Background(), slug)
	return t != nil, nil
}

// MockVenueRepository is a map-backed VenueRepository
type MockVenueRepository struct {
	venues map[string]*domain.Venue
	byID   map[int64]*domain.Venue
	nextID int64
}

func NewMockVenueRepository() *MockVenueRepository {
	return &MockVenueRepository{
		venues: make(map[string]*domain.Venue),
		byID:   make(map[int64]*domain.Venue),
	}
}

func (m *MockVenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	m.nextID++
	v.ID = m.nextID
	m.venues[v.ExternalID] = v
	m.byID[v.ID] = v
	return nil
}

func (m *MockVenueRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Venue, error) {
	v, ok := m.venues[externalID]
	if !ok || !visibleTo(sc, v.TenantID) {
		return nil, nil
	}
	return v, nil
}

func (m *MockVenueRepository) List(ctx context.Context, sc tenant.Context) ([]*domain.Venue, error) {
	var venues []*domain.Venue
	for _, v := range m.venues {
		if visibleTo(sc, v.TenantID) {
			venues = append(venues, v)
		}
	}
	return venues, nil
}

func (m *MockVenueRepository) Update(ctx context.Context, sc tenant.Context, v *domain.Venue) error {
	existing, ok := m.byID[v.ID]
	if !ok || !visibleTo(sc, existing.TenantID) {
		return domain.NewNotFound("venue")
	}
	m.venues[v.ExternalID] = v
	m.byID[v.ID] = v
	return nil
}

func (m *MockVenueRepository) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	v, ok := m.venues[externalID]
	if !ok || !visibleTo(sc, v.TenantID) {
		return false, nil
	}
	delete(m.venues, externalID)
	delete(m.byID, v.ID)
	return true, nil
}

// MockActRepository is a map-backed ActRepository
type MockActRepository struct {
	acts   map[string]*domain.Act
	byID   map[int64]*domain.Act
	nextID int64
}

func NewMockActRepository() *MockActRepository {
	return &MockActRepository{
		acts: make(map[string]*domain.Act),
		byID: make(map[int64]*domain.Act),
	}
}

func (m *MockActRepository) Create(ctx context.Context, a *domain.Act) error {
	m.nextID++
	a.ID = m.nextID
	m.acts[a.ExternalID] = a
	m.byID[a.ID] = a
	return nil
}

func (m *MockActRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Act, error) {
	a, ok := m.acts[externalID]
	if !ok || !visibleTo(sc, a.TenantID) {
		return nil, nil
	}
	return a, nil
}

func (m *MockActRepository) List(ctx context.Context, sc tenant.Context) ([]*domain.Act, error) {
	var acts []*domain.Act
	for _, a := range m.acts {
		if visibleTo(sc, a.TenantID) {
			acts = append(acts, a)
		}
	}
	return acts, nil
}

func (m *MockActRepository) Update(ctx context.Context, sc tenant.Context, a *domain.Act) error {
	existing, ok := m.byID[a.ID]
	if !ok || !visibleTo(sc, existing.TenantID) {
		return domain.NewNotFound("act")
	}
	m.acts[a.ExternalID] = a
	m.byID[a.ID] = a
	return nil
}

func (m *MockActRepository) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	a, ok := m.acts[externalID]
	if !ok || !visibleTo(sc, a.TenantID) {
		return false, nil
	}
	delete(m.acts, externalID)
	delete(m.byID, a.ID)
	return true, nil
}

// MockCustomerRepository is a map-backed CustomerRepository
type MockCustomerRepository struct {
	customers map[string]*domain.Customer
	nextID    int64
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{customers: make(map[string]*domain.Customer)}
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m.nextID++
	c.ID = m.nextID
	m.customers[c.ExternalID] = c
	return nil
}

func (m *MockCustomerRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Customer, error) {
	c, ok := m.customers[externalID]
	if !ok || !visibleTo(sc, c.TenantID) {
		return nil, nil
	}
	return c, nil
}

func (m *MockCustomerRepository) List(ctx context.Context, sc tenant.Context) ([]*domain.Customer, error) {
	var customers []*domain.Customer
	for _, c := range m.customers {
		if visibleTo(sc, c.TenantID) {
			customers = append(customers, c)
		}
	}
	return customers, nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, sc tenant.Context, c *domain.Customer) error {
	existing, ok := m.customers[c.ExternalID]
	if !ok || !visibleTo(sc, existing.TenantID) {
		return domain.NewNotFound("customer")
	}
	m.customers[c.ExternalID] = c
	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	c, ok := m.customers[externalID]
	if !ok || !visibleTo(sc, c.TenantID) {
		return false, nil
	}
	delete(m.customers, externalID)
	return true, nil
}

// MockShowRepository is a map-backed ShowRepository. A show's tenant is
// resolved through its venue, exactly like the SQL predicate does.
type MockShowRepository struct {
	shows     map[string]*domain.Show
	byID      map[int64]*domain.Show
	venueRepo *MockVenueRepository
	nextID    int64
}

func NewMockShowRepository(venueRepo *MockVenueRepository) *MockShowRepository {
	return &MockShowRepository{
		shows:     make(map[string]*domain.Show),
		byID:      make(map[int64]*domain.Show),
		venueRepo: venueRepo,
	}
}

func (m *MockShowRepository) showVisible(sc tenant.Context, s *domain.Show) bool {
	v, ok := m.venueRepo.byID[s.VenueID]
	if !ok {
		return false
	}
	return visibleTo(sc, v.TenantID)
}

func (m *MockShowRepository) Create(ctx context.Context, s *domain.Show) error {
	m.nextID++
	s.ID = m.nextID
	m.shows[s.ExternalID] = s
	m.byID[s.ID] = s
	return nil
}

func (m *MockShowRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.Show, error) {
	s, ok := m.shows[externalID]
	if !ok || !m.showVisible(sc, s) {
		return nil, nil
	}
	return s, nil
}

func (m *MockShowRepository) ListByActID(ctx context.Context, sc tenant.Context, actID int64) ([]*domain.Show, error) {
	var shows []*domain.Show
	for _, s := range m.shows {
		if s.ActID == actID && m.showVisible(sc, s) {
			shows = append(shows, s)
		}
	}
	sort.Slice(shows, func(i, j int) bool { return shows[i].ID < shows[j].ID })
	return shows, nil
}

func (m *MockShowRepository) ListByVenueWithin(ctx context.Context, sc tenant.Context, venueID int64, from, to time.Time) ([]*domain.Show, error) {
	var shows []*domain.Show
	for _, s := range m.shows {
		if s.VenueID != venueID || !m.showVisible(sc, s) {
			continue
		}
		if s.StartTime.Before(from) || s.StartTime.After(to) {
			continue
		}
		shows = append(shows, s)
	}
	sort.Slice(shows, func(i, j int) bool { return shows[i].StartTime.Before(shows[j].StartTime) })
	return shows, nil
}

func (m *MockShowRepository) Update(ctx context.Context, sc tenant.Context, s *domain.Show) error {
	existing, ok := m.byID[s.ID]
	if !ok || !m.showVisible(sc, existing) {
		return domain.NewNotFound("show")
	}
	m.shows[s.ExternalID] = s
	m.byID[s.ID] = s
	return nil
}

func (m *MockShowRepository) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	s, ok := m.shows[externalID]
	if !ok || !m.showVisible(sc, s) {
		return false, nil
	}
	delete(m.shows, externalID)
	delete(m.byID, s.ID)
	return true, nil
}

// MockTicketOfferRepository is a map-backed TicketOfferRepository
type MockTicketOfferRepository struct {
	offers   map[string]*domain.TicketOffer
	showRepo *MockShowRepository
	nextID   int64

	// forceConflict makes Create behave as if a concurrent creation consumed
	// the remaining allocation between the service's check and the commit
	forceConflict bool
}

func NewMockTicketOfferRepository(showRepo *MockShowRepository) *MockTicketOfferRepository {
	return &MockTicketOfferRepository{
		offers:   make(map[string]*domain.TicketOffer),
		showRepo: showRepo,
	}
}

func (m *MockTicketOfferRepository) Create(ctx context.Context, offer *domain.TicketOffer) error {
	if m.forceConflict {
		return domain.NewConflict("ticket allocation changed concurrently: 0 tickets remaining")
	}
	m.nextID++
	offer.ID = m.nextID
	m.offers[offer.ExternalID] = offer
	return nil
}

func (m *MockTicketOfferRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.TicketOffer, error) {
	offer, ok := m.offers[externalID]
	if !ok {
		return nil, nil
	}
	show, ok := m.showRepo.byID[offer.ShowID]
	if !ok || !m.showRepo.showVisible(sc, show) {
		return nil, nil
	}
	return offer, nil
}

func (m *MockTicketOfferRepository) ListByShowID(ctx context.Context, sc tenant.Context, showID int64) ([]*domain.TicketOffer, error) {
	show, ok := m.showRepo.byID[showID]
	if !ok || !m.showRepo.showVisible(sc, show) {
		return nil, nil
	}
	var offers []*domain.TicketOffer
	for _, o := range m.offers {
		if o.ShowID == showID {
			offers = append(offers, o)
		}
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].ID < offers[j].ID })
	return offers, nil
}

func (m *MockTicketOfferRepository) SumTicketCountByShowID(ctx context.Context, showID int64) (int, error) {
	sum := 0
	for _, o := range m.offers {
		if o.ShowID == showID {
			sum += o.TicketCount
		}
	}
	return sum, nil
}

// MockTicketSaleRepository is a map-backed TicketSaleRepository
type MockTicketSaleRepository struct {
	sales    map[string]*domain.TicketSale
	showRepo *MockShowRepository
	nextID   int64
}

func NewMockTicketSaleRepository(showRepo *MockShowRepository) *MockTicketSaleRepository {
	return &MockTicketSaleRepository{
		sales:    make(map[string]*domain.TicketSale),
		showRepo: showRepo,
	}
}

func (m *MockTicketSaleRepository) saleVisible(sc tenant.Context, s *domain.TicketSale) bool {
	show, ok := m.showRepo.byID[s.ShowID]
	if !ok {
		return false
	}
	return m.showRepo.showVisible(sc, show)
}

func (m *MockTicketSaleRepository) Create(ctx context.Context, s *domain.TicketSale) error {
	m.nextID++
	s.ID = m.nextID
	m.sales[s.ExternalID] = s
	return nil
}

func (m *MockTicketSaleRepository) GetByExternalID(ctx context.Context, sc tenant.Context, externalID string) (*domain.TicketSale, error) {
	s, ok := m.sales[externalID]
	if !ok || !m.saleVisible(sc, s) {
		return nil, nil
	}
	return s, nil
}

func (m *MockTicketSaleRepository) ListByShowID(ctx context.Context, sc tenant.Context, showID int64) ([]*domain.TicketSale, error) {
	var sales []*domain.TicketSale
	for _, s := range m.sales {
		if s.ShowID == showID && m.saleVisible(sc, s) {
			sales = append(sales, s)
		}
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].ID < sales[j].ID })
	return sales, nil
}

func (m *MockTicketSaleRepository) Update(ctx context.Context, sc tenant.Context, s *domain.TicketSale) error {
	existing, ok := m.sales[s.ExternalID]
	if !ok || !m.saleVisible(sc, existing) {
		return domain.NewNotFound("ticket sale")
	}
	m.sales[s.ExternalID] = s
	return nil
}

func (m *MockTicketSaleRepository) Delete(ctx context.Context, sc tenant.Context, externalID string) (bool, error) {
	s, ok := m.sales[externalID]
	if !ok || !m.saleVisible(sc, s) {
		return false, nil
	}
	delete(m.sales, externalID)
	return true, nil
}
