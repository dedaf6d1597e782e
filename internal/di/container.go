package di

import (
	"github.com/stagepass/stagepass/internal/events"
	"github.com/stagepass/stagepass/internal/handler"
	"github.com/stagepass/stagepass/internal/repository"
	"github.com/stagepass/stagepass/internal/service"
	"github.com/stagepass/stagepass/pkg/database"
	"github.com/stagepass/stagepass/pkg/redis"
)

// Container holds all dependencies for the service
type Container struct {
	// Infrastructure
	DB     *database.PostgresDB
	Redis  *redis.Client
	Events events.Publisher

	// Repositories
	TenantRepo      repository.TenantRepository
	VenueRepo       repository.VenueRepository
	ActRepo         repository.ActRepository
	CustomerRepo    repository.CustomerRepository
	ShowRepo        repository.ShowRepository
	TicketOfferRepo repository.TicketOfferRepository
	TicketSaleRepo  repository.TicketSaleRepository

	// Services
	TenantService      service.TenantService
	VenueService       service.VenueService
	ActService         service.ActService
	CustomerService    service.CustomerService
	ShowService        service.ShowService
	TicketOfferService service.TicketOfferService
	TicketSaleService  service.TicketSaleService

	// Handlers
	HealthHandler      *handler.HealthHandler
	TenantHandler      *handler.TenantHandler
	VenueHandler       *handler.VenueHandler
	ActHandler         *handler.ActHandler
	CustomerHandler    *handler.CustomerHandler
	ShowHandler        *handler.ShowHandler
	TicketOfferHandler *handler.TicketOfferHandler
	TicketSaleHandler  *handler.TicketSaleHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB     *database.PostgresDB
	Redis  *redis.Client
	Events events.Publisher
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:     cfg.DB,
		Redis:  cfg.Redis,
		Events: cfg.Events,
	}
	if c.Events == nil {
		c.Events = events.NopPublisher{}
	}

	// Initialize repositories
	c.TenantRepo = repository.NewPostgresTenantRepository(c.DB.Pool())
	c.VenueRepo = repository.NewPostgresVenueRepository(c.DB.Pool())
	c.ActRepo = repository.NewPostgresActRepository(c.DB.Pool())
	c.CustomerRepo = repository.NewPostgresCustomerRepository(c.DB.Pool())
	c.ShowRepo = repository.NewPostgresShowRepository(c.DB.Pool())
	c.TicketOfferRepo = repository.NewPostgresTicketOfferRepository(c.DB.Pool())
	c.TicketSaleRepo = repository.NewPostgresTicketSaleRepository(c.DB.Pool())

	// Initialize services
	c.TenantService = service.NewTenantService(c.TenantRepo, c.Events)
	c.VenueService = service.NewVenueService(c.VenueRepo, c.Events)
	c.ActService = service.NewActService(c.ActRepo, c.Events)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo, c.Events)
	c.ShowService = service.NewShowService(c.ShowRepo, c.VenueRepo, c.ActRepo, c.TicketOfferRepo, c.Events)
	c.TicketOfferService = service.NewTicketOfferService(c.TicketOfferRepo, c.ShowRepo, c.Events)
	c.TicketSaleService = service.NewTicketSaleService(c.TicketSaleRepo, c.ShowRepo, c.Events)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.TenantHandler = handler.NewTenantHandler(c.TenantService)
	c.VenueHandler = handler.NewVenueHandler(c.VenueService)
	c.ActHandler = handler.NewActHandler(c.ActService)
	c.CustomerHandler = handler.NewCustomerHandler(c.CustomerService)
	c.ShowHandler = handler.NewShowHandler(c.ShowService)
	c.TicketOfferHandler = handler.NewTicketOfferHandler(c.TicketOfferService)
	c.TicketSaleHandler = handler.NewTicketSaleHandler(c.TicketSaleService)

	return c
}
