package api

// swagger:model api.CreateContactMessageRequest
type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// UpdateContactMessageRequest 僅供管理端更新處理狀態
// swagger:model api.UpdateContactMessageRequest
type UpdateContactMessageRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Read Replied"`
}
