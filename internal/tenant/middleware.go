package tenant

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stagepass/stagepass/pkg/middleware"
	"github.com/stagepass/stagepass/pkg/response"
)

// Verifier reports whether a tenant id resolves to a known, active tenant.
// Tokens outlive tenant deactivation, so the claim alone is not enough.
type Verifier interface {
	VerifyActive(ctx context.Context, tenantID int64) (bool, error)
}

// ScopeMiddleware binds every request on the group to the tenant carried in
// the authenticated claims. Requests without a tenant claim are rejected, so
// a tenant-authenticated path can never reach the unscoped variant. Requests
// for a deactivated or unknown tenant are rejected too.
func ScopeMiddleware(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, ok := middleware.TenantIDFromGin(c)
		if !ok || tenantID <= 0 {
			response.Error(c, http.StatusUnauthorized, "NO_TENANT", "No tenant bound to this session", "")
			c.Abort()
			return
		}

		active, err := verifier.VerifyActive(c.Request.Context(), tenantID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Could not verify tenant", "")
			c.Abort()
			return
		}
		if !active {
			response.Error(c, http.StatusForbidden, "TENANT_INACTIVE", "Tenant is inactive or unknown", "")
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(NewContext(c.Request.Context(), Scoped(tenantID)))
		c.Next()
	}
}

// AdminScopeMiddleware binds requests to the unscoped administrative context.
// It must be mounted behind middleware.RequireRole("admin").
func AdminScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := middleware.RoleFromGin(c)
		if role != "admin" {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Administrative scope requires the admin role", "")
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(NewContext(c.Request.Context(), Unscoped()))
		c.Next()
	}
}
