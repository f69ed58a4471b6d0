package api

// swagger:model api.CreateStoryRequest
type CreateStoryRequest struct {
	Title    string `json:"title" validate:"required"`
	Slug     string `json:"slug" validate:"required"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Location string `json:"location"`
	Featured bool   `json:"featured"`
	Status   string `json:"status" validate:"omitempty,oneof=Draft Published"`
}

// swagger:model api.UpdateStoryRequest
type UpdateStoryRequest struct {
	Title    string `json:"title" validate:"required"`
	Slug     string `json:"slug" validate:"required"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Location string `json:"location"`
	Featured bool   `json:"featured"`
	Status   string `json:"status" validate:"required,oneof=Draft Published"`
}
