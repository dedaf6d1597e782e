package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stagepass/stagepass/internal/di"
	"github.com/stagepass/stagepass/internal/events"
	"github.com/stagepass/stagepass/internal/tenant"
	"github.com/stagepass/stagepass/pkg/config"
	"github.com/stagepass/stagepass/pkg/database"
	"github.com/stagepass/stagepass/pkg/kafka"
	"github.com/stagepass/stagepass/pkg/logger"
	"github.com/stagepass/stagepass/pkg/middleware"
	"github.com/stagepass/stagepass/pkg/redis"
	"github.com/stagepass/stagepass/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger.Init(cfg.App.LogLevel)
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting StagePass...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MaxIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   1 * time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Initialize Redis connection (optional, idempotency is disabled without it)
	var redisClient *redis.Client
	redisCfg := &redis.Config{
		Host:          cfg.Redis.Host,
		Port:          cfg.Redis.Port,
		Password:      cfg.Redis.Password,
		DB:            cfg.Redis.DB,
		PoolSize:      cfg.Redis.PoolSize,
		MinIdleConns:  cfg.Redis.MinIdleConns,
		DialTimeout:   cfg.Redis.DialTimeout,
		ReadTimeout:   cfg.Redis.ReadTimeout,
		WriteTimeout:  cfg.Redis.WriteTimeout,
		MaxRetries:    3,
		RetryInterval: time.Second,
	}
	redisClient, err = redis.NewClient(ctx, redisCfg)
	if err != nil {
		appLog.Warn(fmt.Sprintf("Redis connection failed (idempotency disabled): %v", err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLog.Info(fmt.Sprintf("Redis connected (%s)", redisCfg.Addr()))
	}

	// Initialize Kafka producer (optional, entity events become no-ops without it)
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(ctx, &kafka.ProducerConfig{
			Brokers:  cfg.Kafka.Brokers,
			ClientID: cfg.Kafka.ClientID,
		})
		if err != nil {
			appLog.Warn(fmt.Sprintf("Kafka connection failed (entity events disabled): %v", err))
		} else {
			kafkaPublisher := events.NewKafkaPublisher(producer)
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
			appLog.Info(fmt.Sprintf("Kafka connected (%v)", cfg.Kafka.Brokers))
		}
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		DB:     db,
		Redis:  redisClient,
		Events: publisher,
	})

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.OTel.ServiceName))
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.JWTMiddleware(cfg.JWT.Secret))

	// Tenant-scoped routes: every request is bound to the tenant in the
	// caller's claims. Mutations are idempotent when Redis is available.
	scoped := v1.Group("")
	scoped.Use(tenant.ScopeMiddleware(container.TenantService))
	if redisClient != nil {
		scoped.Use(middleware.IdempotencyMiddleware(middleware.DefaultIdempotencyConfig(redisClient)))
	}
	registerEntityRoutes(scoped, container)

	// Administrative routes: the unscoped context sees every tenant. The
	// same entity handlers are mounted so admins can read and repair any
	// tenant's data, plus tenant provisioning which has no scoped variant.
	admin := v1.Group("/admin")
	admin.Use(middleware.RequireRole("admin"), tenant.AdminScopeMiddleware())
	{
		admin.POST("/tenants", container.TenantHandler.Create)
		admin.GET("/tenants", container.TenantHandler.List)
		admin.GET("/tenants/:id", container.TenantHandler.GetByExternalID)
		admin.GET("/tenants/slug/:slug", container.TenantHandler.GetBySlug)
	}
	registerEntityRoutes(admin, container)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLog.Info(fmt.Sprintf("Listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal(fmt.Sprintf("Server failed: %v", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error(fmt.Sprintf("Forced shutdown: %v", err))
	}
	appLog.Info("Server stopped")
}

// registerEntityRoutes mounts the entity endpoints on a group. The group's
// scope middleware decides whether requests see one tenant or all of them.
func registerEntityRoutes(g *gin.RouterGroup, c *di.Container) {
	venues := g.Group("/venues")
	{
		venues.POST("", c.VenueHandler.Create)
		venues.GET("", c.VenueHandler.List)
		venues.GET("/:id", c.VenueHandler.GetByExternalID)
		venues.PATCH("/:id", c.VenueHandler.Update)
		venues.DELETE("/:id", c.VenueHandler.Delete)
		venues.GET("/:id/shows/nearby", c.ShowHandler.Nearby)
	}

	acts := g.Group("/acts")
	{
		acts.POST("", c.ActHandler.Create)
		acts.GET("", c.ActHandler.List)
		acts.GET("/:id", c.ActHandler.GetByExternalID)
		acts.PATCH("/:id", c.ActHandler.Update)
		acts.DELETE("/:id", c.ActHandler.Delete)
		acts.GET("/:id/shows", c.ShowHandler.ListByAct)
	}

	customers := g.Group("/customers")
	{
		customers.POST("", c.CustomerHandler.Create)
		customers.GET("", c.CustomerHandler.List)
		customers.GET("/:id", c.CustomerHandler.GetByExternalID)
		customers.PATCH("/:id", c.CustomerHandler.Update)
		customers.DELETE("/:id", c.CustomerHandler.Delete)
	}

	shows := g.Group("/shows")
	{
		shows.POST("", c.ShowHandler.Create)
		shows.GET("/:id", c.ShowHandler.GetByExternalID)
		shows.PATCH("/:id", c.ShowHandler.Update)
		shows.DELETE("/:id", c.ShowHandler.Delete)
		shows.GET("/:id/ticket-offers", c.TicketOfferHandler.ListByShow)
		shows.GET("/:id/capacity", c.TicketOfferHandler.CapacitySummary)
		shows.GET("/:id/ticket-sales", c.TicketSaleHandler.ListByShow)
	}

	offers := g.Group("/ticket-offers")
	{
		offers.POST("", c.TicketOfferHandler.Create)
		offers.GET("/:id", c.TicketOfferHandler.GetByExternalID)
	}

	sales := g.Group("/ticket-sales")
	{
		sales.POST("", c.TicketSaleHandler.Create)
		sales.GET("/:id", c.TicketSaleHandler.GetByExternalID)
		sales.PATCH("/:id", c.TicketSaleHandler.Update)
		sales.DELETE("/:id", c.TicketSaleHandler.Delete)
	}
}
