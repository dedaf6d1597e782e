// Package handler exposes the HTTP surface. Handlers resolve the tenant
// scope once per request, delegate to services and translate domain errors
// to HTTP statuses. Other-tenant data maps to 404 exactly like missing data.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/service"
	"github.com/stagepass/stagepass/internal/tenant"
	"github.com/stagepass/stagepass/pkg/response"
)

// requestScope extracts the tenant scope bound by the scope middleware. A
// missing scope means a route was mounted without middleware; the request is
// rejected rather than silently widened.
func requestScope(c *gin.Context) (tenant.Context, bool) {
	sc, err := tenant.FromContext(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "NO_TENANT", "No tenant scope bound to this request", "")
		return tenant.Context{}, false
	}
	return sc, true
}

// pathID extracts the :id path parameter and rejects anything that is not a
// well formed uuid before it reaches a query. A malformed id cannot match any
// row, so it reports the same 404 as an unknown one.
func pathID(c *gin.Context, entity string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.NotFound(c, entity+" not found")
		return "", false
	}
	return id, true
}

// writeServiceError maps a service error to an HTTP response.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		response.NotFound(c, err.Error())
	case domain.IsInvalidArgument(err):
		response.BadRequest(c, err.Error())
	case domain.IsConflict(err):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrAdminScopeRequired):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error(), "")
	case errors.Is(err, tenant.ErrNoTenant):
		response.Error(c, http.StatusForbidden, "NO_TENANT", err.Error(), "")
	default:
		response.InternalError(c, err)
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
