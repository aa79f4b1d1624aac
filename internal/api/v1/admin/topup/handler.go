package topup

import (
	"github.com/gin-gonic/gin"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/common"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/middleware"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/utils"
)

// Pending lists unresolved topups, oldest first.
func Pending(c *gin.Context) {
	topups, err := services.PendingTopups()
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Pending topups", topups)
}

// Approve credits a pending topup and lifts the user's restriction.
// topup_id selects an exact record; otherwise the newest pending topup
// matching (user_id, amount) is approved. No match credits nothing.
func Approve(c *gin.Context) {
	var req ApproveTopupRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	t, err := services.ApproveTopup(middleware.ActorID(c), req.UserID, req.Amount, req.TopupID)
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Topup approved", t)
}
