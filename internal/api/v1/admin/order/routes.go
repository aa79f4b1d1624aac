package order

import "github.com/gin-gonic/gin"

// RegisterRoutes registers admin order routes.
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/orders/:id", Get)
	router.POST("/orders/:id/resolve", Resolve)
}
