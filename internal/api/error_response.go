package api

// ErrorResponse 統一的錯誤回應格式
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"error" example:"unauthorized"`
}
