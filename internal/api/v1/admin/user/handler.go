package user

import (
	"github.com/gin-gonic/gin"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/common"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/middleware"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/utils"
)

// Deduct removes balance from a user's account with a journal entry.
func Deduct(c *gin.Context) {
	var req DeductRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	u, err := services.Deduct(middleware.ActorID(c), req.UserID, req.Amount)
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Balance deducted", gin.H{"user_id": u.TelegramID, "balance": u.Balance})
}

// Authorize grants shop access to a user.
func Authorize(c *gin.Context) {
	var req TargetRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	added, err := services.Authorize(middleware.ActorID(c), req.UserID)
	if err != nil {
		common.Error(c, err)
		return
	}
	if !added {
		common.OK(c, "User is already authorized", nil)
		return
	}
	common.OK(c, "User authorized", nil)
}

// Unauthorize revokes shop access.
func Unauthorize(c *gin.Context) {
	var req TargetRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	removed, err := services.Unauthorize(middleware.ActorID(c), req.UserID)
	if err != nil {
		common.Error(c, err)
		return
	}
	if !removed {
		common.OK(c, "User was not authorized", nil)
		return
	}
	common.OK(c, "User access revoked", nil)
}

// ListAuthorized returns every authorized user id.
func ListAuthorized(c *gin.Context) {
	ids, err := services.AuthorizedIDs()
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Authorized users", ids)
}

// AddAdmin appoints an admin. Owner only.
func AddAdmin(c *gin.Context) {
	var req TargetRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	added, err := services.AddAdmin(middleware.ActorID(c), req.UserID)
	if err != nil {
		common.Error(c, err)
		return
	}
	if !added {
		common.OK(c, "User is already an admin", nil)
		return
	}
	common.OK(c, "Admin appointed", nil)
}

// RemoveAdmin revokes an admin appointment. Owner only.
func RemoveAdmin(c *gin.Context) {
	var req TargetRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	removed, err := services.RemoveAdmin(middleware.ActorID(c), req.UserID)
	if err != nil {
		common.Error(c, err)
		return
	}
	if !removed {
		common.OK(c, "User is not an admin", nil)
		return
	}
	common.OK(c, "Admin removed", nil)
}

// ListAdmins returns the owner followed by appointed admins.
func ListAdmins(c *gin.Context) {
	ids, err := services.AdminIDs()
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Admins", ids)
}
