package settings

type MaintenanceRequest struct {
	Feature string `json:"feature" binding:"required,oneof=orders topups general"`
	Enabled *bool  `json:"enabled" binding:"required"`
}

type SetPriceRequest struct {
	Code  string `json:"code" binding:"required"`
	Price int64  `json:"price" binding:"required,min=1"`
}

type BroadcastRequest struct {
	Text string `json:"text" binding:"required"`
}
