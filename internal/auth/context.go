package auth

import "github.com/gin-gonic/gin"

const (
	ctxUserID    = "userID"
	ctxUserEmail = "userEmail"
	ctxUserRole  = "userRole"
)

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(ctxUserID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserRole returns the authenticated user's role or the zero Role.
func GetUserRole(c *gin.Context) Role {
	if v, ok := c.Get(ctxUserRole); ok {
		if s, ok := v.(string); ok {
			return Role(s)
		}
	}
	return ""
}

// GetActor returns the authenticated identity stored by the auth middleware.
func GetActor(c *gin.Context) Actor {
	actor := Actor{
		ID:   GetUserID(c),
		Role: GetUserRole(c),
	}
	if v, ok := c.Get(ctxUserEmail); ok {
		if s, ok := v.(string); ok {
			actor.Email = s
		}
	}
	return actor
}
