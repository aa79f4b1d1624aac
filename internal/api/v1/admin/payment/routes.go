package payment

import "github.com/gin-gonic/gin"

// RegisterRoutes registers payment channel management routes. QR routes
// apply their own owner check in the service layer.
func RegisterRoutes(router *gin.RouterGroup) {
	router.PUT("/payments/:code/number", SetNumber)
	router.PUT("/payments/:code/name", SetHolder)
	router.PUT("/payments/:code/qr", SetQR)
	router.DELETE("/payments/:code/qr", RemoveQR)
}
