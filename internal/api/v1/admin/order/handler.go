package order

import (
	"github.com/gin-gonic/gin"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/common"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/middleware"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/utils"
)

// Get returns one order by id.
func Get(c *gin.Context) {
	o, err := services.GetOrder(c.Param("id"))
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Order", o)
}

// Resolve moves a pending order to confirmed or cancelled. Losing a
// resolution race returns 409; the order keeps the first resolver's
// outcome.
func Resolve(c *gin.Context) {
	var req ResolveOrderRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	o, err := services.ResolveOrder(middleware.ActorID(c), c.Param("id"), req.Outcome)
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Order "+string(o.Status), o)
}
