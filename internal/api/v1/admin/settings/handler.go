package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/common"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/middleware"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/utils"
)

// Maintenance returns the current feature gate flags.
func Maintenance(c *gin.Context) {
	common.OK(c, "Maintenance flags", services.Maintenance.Snapshot())
}

// SetMaintenance toggles one feature gate.
func SetMaintenance(c *gin.Context) {
	var req MaintenanceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := services.Maintenance.Set(middleware.ActorID(c), services.Feature(req.Feature), *req.Enabled); err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Maintenance flag updated", services.Maintenance.Snapshot())
}

// SetPrice upserts a price override.
func SetPrice(c *gin.Context) {
	var req SetPriceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := services.SetPriceOverride(middleware.ActorID(c), req.Code, req.Price); err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Price override set", gin.H{"code": req.Code, "price": req.Price})
}

// ClearPrice removes a price override, restoring the default.
func ClearPrice(c *gin.Context) {
	if err := services.ClearPriceOverride(middleware.ActorID(c), c.Param("code")); err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Price override cleared", nil)
}

// Broadcast sends a message to every authorized user.
func Broadcast(c *gin.Context) {
	var req BroadcastRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	count, err := services.Broadcast(middleware.ActorID(c), req.Text)
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Broadcast enqueued", gin.H{"recipients": count})
}
