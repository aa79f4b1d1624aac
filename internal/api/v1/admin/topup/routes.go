package topup

import "github.com/gin-gonic/gin"

// RegisterRoutes registers admin topup routes.
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/topups/pending", Pending)
	router.POST("/topups/approve", Approve)
}
