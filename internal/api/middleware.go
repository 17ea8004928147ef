package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomify/roomify-backend/internal/auth"
)

// RequireRoles ensures the authenticated user holds one of the given roles.
// It MUST be used after auth.AuthRequired middleware.
func RequireRoles(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := auth.GetUserRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden: insufficient role"})
	}
}

// RequireStaff admits receptionists and admins.
func RequireStaff() gin.HandlerFunc {
	return RequireRoles(auth.RoleReceptionist, auth.RoleAdmin)
}

// RequireAdmin admits admins only.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(auth.RoleAdmin)
}

// RequireHousekeeping admits housekeeping staff and admins.
func RequireHousekeeping() gin.HandlerFunc {
	return RequireRoles(auth.RoleHousekeeping, auth.RoleAdmin)
}
