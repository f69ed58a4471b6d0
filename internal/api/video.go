package api

// swagger:model api.CreateVideoRequest
type CreateVideoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required,url"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	Featured    bool   `json:"featured"`
	Status      string `json:"status" validate:"omitempty,oneof=Draft Published"`
}

// swagger:model api.UpdateVideoRequest
type UpdateVideoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required,url"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	Featured    bool   `json:"featured"`
	Status      string `json:"status" validate:"required,oneof=Draft Published"`
}
