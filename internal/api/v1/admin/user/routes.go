package user

import (
	"github.com/gin-gonic/gin"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/middleware"
)

// RegisterRoutes registers admin user-management routes. Admin appointment
// is further restricted to the owner.
func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/deduct", Deduct)
	router.POST("/authorize", Authorize)
	router.POST("/unauthorize", Unauthorize)
	router.GET("/authorized", ListAuthorized)

	owner := router.Group("/admins")
	owner.Use(middleware.RequireOwner())
	{
		owner.GET("", ListAdmins)
		owner.POST("", AddAdmin)
		owner.DELETE("", RemoveAdmin)
	}
}
