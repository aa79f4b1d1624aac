package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	adminOrder "github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/admin/order"
	adminPayment "github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/admin/payment"
	adminSettings "github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/admin/settings"
	adminTopup "github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/admin/topup"
	adminUser "github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/admin/user"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/shop"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/middleware"
)

// NewRouter builds the gin engine with every route group mounted. The
// database and notifier must already be wired by the caller.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Actor-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.ActorMiddleware())
	{
		authorized := v1.Group("/")
		authorized.Use(middleware.RequireAuthorized())
		{
			shop.RegisterRoutes(authorized)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			adminOrder.RegisterRoutes(admin)
			adminTopup.RegisterRoutes(admin)
			adminUser.RegisterRoutes(admin)
			adminPayment.RegisterRoutes(admin)
			adminSettings.RegisterRoutes(admin)
		}
	}

	return router
}
