package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/stagepass/stagepass/pkg/response"
)

const (
	ctxUserIDKey   = "auth_user_id"
	ctxRoleKey     = "auth_role"
	ctxTenantIDKey = "auth_tenant_id"
)

// JWTMiddleware validates the Bearer token and stores the authenticated
// claims on the gin context. The tenant_id claim is optional: administrative
// users carry a role claim instead.
func JWTMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "MISSING_TOKEN", "Authorization header is required", "")
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Authorization header must use the Bearer scheme", "")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token", "")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", "")
			c.Abort()
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set(ctxUserIDKey, sub)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(ctxRoleKey, role)
		}
		if tenantID, ok := tenantIDClaim(claims["tenant_id"]); ok {
			c.Set(ctxTenantIDKey, tenantID)
		}

		c.Next()
	}
}

// tenantIDClaim reads the tenant_id claim, which arrives as a JSON number or
// a numeric string depending on the token issuer.
func tenantIDClaim(v interface{}) (int64, bool) {
	switch tid := v.(type) {
	case float64:
		return int64(tid), true
	case string:
		id, err := strconv.ParseInt(tid, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// RequireRole rejects requests whose token does not carry the given role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := RoleFromGin(c)
		if !ok || got != role {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient role", "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserIDFromGin returns the authenticated user id
func UserIDFromGin(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// RoleFromGin returns the authenticated role
func RoleFromGin(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

// TenantIDFromGin returns the tenant bound to the authenticated session
func TenantIDFromGin(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxTenantIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
