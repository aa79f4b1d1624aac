package settings

import "github.com/gin-gonic/gin"

// RegisterRoutes registers maintenance, pricing, and broadcast routes.
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/maintenance", Maintenance)
	router.POST("/maintenance", SetMaintenance)
	router.POST("/prices", SetPrice)
	router.DELETE("/prices/:code", ClearPrice)
	router.POST("/broadcast", Broadcast)
}
