package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/utils"
)

const actorKey = "actor_id"

// ActorMiddleware extracts the acting platform identity from the
// X-Actor-ID header and stores it in the request context. Every shop route
// requires it; access levels are layered on top per route group.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Actor-ID")
		if raw == "" {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "X-Actor-ID header is required"))
			c.Abort()
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "X-Actor-ID must be a nonzero integer"))
			c.Abort()
			return
		}
		c.Set(actorKey, id)
		c.Next()
	}
}

// ActorID returns the identity set by ActorMiddleware.
func ActorID(c *gin.Context) int64 {
	return c.GetInt64(actorKey)
}

// RequireAuthorized rejects actors outside the authorized user set.
// Membership is checked fresh on every request.
func RequireAuthorized() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ActorID(c)
		if !services.IsAuthorized(id) && !services.IsAdmin(id) {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "You are not authorized to use this shop"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects non-admin actors.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !services.IsAdmin(ActorID(c)) {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden: Admins only"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireOwner rejects everyone but the shop owner.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !services.IsOwner(ActorID(c)) {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden: Owner only"))
			c.Abort()
			return
		}
		c.Next()
	}
}
