package topup

type ApproveTopupRequest struct {
	UserID  int64 `json:"user_id" binding:"required"`
	Amount  int64 `json:"amount"`
	TopupID uint  `json:"topup_id"`
}
