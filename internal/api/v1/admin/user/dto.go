package user

type TargetRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

type DeductRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
	Amount int64 `json:"amount" binding:"required,min=1"`
}
