package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stagepass/stagepass/pkg/database"
	"github.com/stagepass/stagepass/pkg/redis"
	"github.com/stagepass/stagepass/pkg/response"
)

// HealthHandler reports process liveness and dependency readiness.
type HealthHandler struct {
	db    *database.PostgresDB
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}

// Ready handles GET /ready. It fails when a dependency is unreachable so the
// instance is taken out of rotation instead of serving errors.
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := gin.H{}
	healthy := true

	if err := h.db.HealthCheck(c.Request.Context()); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if h.redis != nil {
		if err := h.redis.HealthCheck(c.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	}

	if !healthy {
		response.Error(c, http.StatusServiceUnavailable, "NOT_READY", "One or more dependencies are unavailable", "")
		return
	}
	response.Success(c, checks)
}
