package payment

import (
	"github.com/gin-gonic/gin"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/common"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/middleware"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/utils"
)

// SetNumber updates a channel's receiving account number.
func SetNumber(c *gin.Context) {
	var req SetNumberRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	ch, err := services.SetChannelNumber(middleware.ActorID(c), c.Param("code"), req.Number)
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Channel number updated", ch)
}

// SetHolder updates a channel's account holder name.
func SetHolder(c *gin.Context) {
	var req SetHolderRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	ch, err := services.SetChannelHolder(middleware.ActorID(c), c.Param("code"), req.Name)
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Channel holder updated", ch)
}

// SetQR stores a channel's QR image reference. Owner only.
func SetQR(c *gin.Context) {
	var req SetQRRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	ch, err := services.SetChannelQR(middleware.ActorID(c), c.Param("code"), req.FileID)
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Channel QR updated", ch)
}

// RemoveQR deletes a channel's QR reference. Owner only.
func RemoveQR(c *gin.Context) {
	ch, err := services.RemoveChannelQR(middleware.ActorID(c), c.Param("code"))
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Channel QR removed", ch)
}
