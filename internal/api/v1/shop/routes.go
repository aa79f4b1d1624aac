package shop

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the user-facing shop routes.
func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/start", Start)
	router.GET("/balance", Balance)
	router.GET("/prices", Prices)
	router.GET("/history", History)
	router.GET("/payments", Payments)
	router.POST("/orders", CreateOrder)
	router.POST("/topups/declare", DeclareTopup)
	router.POST("/topups/proof", SubmitProof)
}
