package api

import "time"

// swagger:model api.CreateTenderRequest
type CreateTenderRequest struct {
	Title       string     `json:"title" validate:"required"`
	Reference   string     `json:"reference"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	DocumentURL string     `json:"document_url" validate:"omitempty,url"`
	Deadline    *time.Time `json:"deadline"`
	Status      string     `json:"status" validate:"omitempty,oneof=Open Closed"`
}

// swagger:model api.UpdateTenderRequest
type UpdateTenderRequest struct {
	Title       string     `json:"title" validate:"required"`
	Reference   string     `json:"reference"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	DocumentURL string     `json:"document_url" validate:"omitempty,url"`
	Deadline    *time.Time `json:"deadline"`
	Status      string     `json:"status" validate:"required,oneof=Open Closed"`
}
