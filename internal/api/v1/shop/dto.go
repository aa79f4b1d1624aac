package shop

import (
	"time"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/models"
)

type StartRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type CreateOrderRequest struct {
	GameID      string `json:"game_id" binding:"required"`
	ServerID    string `json:"server_id" binding:"required"`
	ProductCode string `json:"product_code" binding:"required"`
	ChatID      int64  `json:"chat_id"`
}

type DeclareTopupRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

type BalanceResponse struct {
	TelegramID int64  `json:"telegram_id"`
	Name       string `json:"name"`
	Balance    int64  `json:"balance"`
	Restricted bool   `json:"restricted"`
}

type OrderResponse struct {
	OrderID     string     `json:"order_id"`
	GameID      string     `json:"game_id"`
	ServerID    string     `json:"server_id"`
	ProductCode string     `json:"product_code"`
	Price       int64      `json:"price"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

func toOrderResponse(o models.Order) OrderResponse {
	return OrderResponse{
		OrderID:     o.OrderID,
		GameID:      o.GameID,
		ServerID:    o.ServerID,
		ProductCode: o.ProductCode,
		Price:       o.Price,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		ResolvedAt:  o.ResolvedAt,
	}
}

type TopupResponse struct {
	ID         uint       `json:"id"`
	Amount     int64      `json:"amount"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
}

func toTopupResponse(t models.Topup) TopupResponse {
	return TopupResponse{
		ID:         t.ID,
		Amount:     t.Amount,
		Status:     string(t.Status),
		CreatedAt:  t.CreatedAt,
		ApprovedAt: t.ApprovedAt,
	}
}

type HistoryResponse struct {
	Orders []OrderResponse `json:"orders"`
	Topups []TopupResponse `json:"topups"`
}

type PaymentChannelResponse struct {
	Code       string `json:"code"`
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	QRFileID   string `json:"qr_file_id,omitempty"`
}
