package api

// swagger:model api.CreateReportRequest
type CreateReportRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	FileURL     string `json:"file_url" validate:"required,url"`
	Year        int    `json:"year" validate:"omitempty,min=1990,max=2100"`
	Status      string `json:"status" validate:"omitempty,oneof=Draft Published"`
}

// swagger:model api.UpdateReportRequest
type UpdateReportRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	FileURL     string `json:"file_url" validate:"required,url"`
	Year        int    `json:"year" validate:"omitempty,min=1990,max=2100"`
	Status      string `json:"status" validate:"required,oneof=Draft Published"`
}
