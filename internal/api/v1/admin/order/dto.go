package order

type ResolveOrderRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=confirm cancel"`
}
