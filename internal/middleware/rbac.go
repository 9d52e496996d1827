package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/response"
)

// RequirePermission checks that the admin JWT contains the required
// permission code.
func RequirePermission(permissionCode string) gin.HandlerFunc {
	return RequireAllPermissions(permissionCode)
}

// RequireAnyPermission checks that the admin JWT contains at least one of
// the specified permissions (ANY mode). An empty list means no restriction.
func RequireAnyPermission(codes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if !model.NewPermissionSet(claims.Permissions).HasAny(codes...) {
			response.AbortFail(c, http.StatusForbidden, response.ErrPermissionDenied)
			return
		}

		c.Next()
	}
}

// RequireAllPermissions checks that the admin JWT contains every one of the
// specified permissions (ALL mode). An empty list means no restriction.
func RequireAllPermissions(codes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if !model.NewPermissionSet(claims.Permissions).HasAll(codes...) {
			response.AbortFail(c, http.StatusForbidden, response.ErrPermissionDenied)
			return
		}

		c.Next()
	}
}
