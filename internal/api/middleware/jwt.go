package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/recruitd/internal/auth"
	"github.com/hireloop/recruitd/internal/models"
	"github.com/hireloop/recruitd/internal/utils"
)

const (
	CtxEmail = "email"
	CtxRole  = "role"
)

type apiError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

// JWTAuth verifies the bearer token and exposes the email and role claims to
// downstream handlers. Every failure mode yields the same 401.
func JWTAuth(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "missing bearer token",
			})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "missing bearer token",
			})
			return
		}

		claims, err := tm.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "invalid token",
			})
			return
		}

		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates an endpoint on the verified role claim. A missing or
// mismatched role is reported as unauthorized, same as a missing token.
func RequireRole(allowed ...models.UserRole) gin.HandlerFunc {
	allow := map[models.UserRole]struct{}{}
	for _, a := range allowed {
		allow[a] = struct{}{}
	}

	return func(c *gin.Context) {
		v, ok := c.Get(CtxRole)
		role, _ := v.(models.UserRole)

		if !ok || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "unauthorized",
			})
			return
		}

		if _, ok := allow[role]; !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "unauthorized",
			})
			return
		}

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc { return RequireRole(models.RoleAdmin) }
