package payment

type SetNumberRequest struct {
	Number string `json:"number" binding:"required"`
}

type SetHolderRequest struct {
	Name string `json:"name" binding:"required"`
}

type SetQRRequest struct {
	FileID string `json:"file_id" binding:"required"`
}
