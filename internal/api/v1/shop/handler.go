package shop

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/api/v1/common"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/middleware"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/utils"
)

// Start registers or refreshes the calling user's account record.
func Start(c *gin.Context) {
	var req StartRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := services.EnsureUser(middleware.ActorID(c), req.Name, req.Username)
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Welcome to the shop", BalanceResponse{
		TelegramID: user.TelegramID,
		Name:       user.Name,
		Balance:    user.Balance,
		Restricted: user.Restricted,
	})
}

// Balance returns the caller's current balance and restriction state.
func Balance(c *gin.Context) {
	user, err := services.FindUserByTelegramID(middleware.ActorID(c))
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Balance", BalanceResponse{
		TelegramID: user.TelegramID,
		Name:       user.Name,
		Balance:    user.Balance,
		Restricted: user.Restricted,
	})
}

// Prices lists the merged price table.
func Prices(c *gin.Context) {
	prices, err := services.CurrentPrices()
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Price list", prices)
}

// History returns the caller's recent orders and topups.
func History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	orders, topups, err := services.UserHistory(middleware.ActorID(c), limit)
	if err != nil {
		common.Error(c, err)
		return
	}

	resp := HistoryResponse{
		Orders: make([]OrderResponse, 0, len(orders)),
		Topups: make([]TopupResponse, 0, len(topups)),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}
	for _, t := range topups {
		resp.Topups = append(resp.Topups, toTopupResponse(t))
	}
	common.OK(c, "History", resp)
}

// Payments lists enabled payment channels for topup instructions.
func Payments(c *gin.Context) {
	channels, err := services.PaymentChannels()
	if err != nil {
		common.Error(c, err)
		return
	}

	out := make([]PaymentChannelResponse, 0, len(channels))
	for _, ch := range channels {
		resp := PaymentChannelResponse{Code: ch.Code, Number: ch.Number, HolderName: ch.HolderName}
		if len(ch.Meta) > 0 {
			meta := map[string]string{}
			if err := json.Unmarshal(ch.Meta, &meta); err == nil {
				resp.QRFileID = meta["qr_file_id"]
			}
		}
		out = append(out, resp)
	}
	common.OK(c, "Payment channels", out)
}

// CreateOrder places a diamond order debited from the caller's balance.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	order, err := services.CreateOrder(middleware.ActorID(c), req.ChatID, req.GameID, req.ServerID, req.ProductCode)
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Order placed", toOrderResponse(*order))
}

// DeclareTopup records how much the caller intends to transfer.
func DeclareTopup(c *gin.Context) {
	var req DeclareTopupRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := services.DeclareTopup(middleware.ActorID(c), req.Amount)
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Topup declared, send payment and submit proof", gin.H{
		"amount":      user.PendingIntentAmount,
		"declared_at": user.PendingIntentAt,
	})
}

// SubmitProof turns the declared topup into a pending approval.
func SubmitProof(c *gin.Context) {
	topup, err := services.SubmitProof(middleware.ActorID(c))
	if err != nil {
		common.Error(c, err)
		return
	}
	common.OK(c, "Proof received, awaiting admin approval", toTopupResponse(*topup))
}
