package api

// swagger:model api.CreateGalleryImageRequest
type CreateGalleryImageRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Category    string `json:"category"`
	Status      string `json:"status" validate:"omitempty,oneof=active hidden"`
}

// swagger:model api.UpdateGalleryImageRequest
type UpdateGalleryImageRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Category    string `json:"category"`
	Status      string `json:"status" validate:"required,oneof=active hidden"`
}
