package api

// swagger:model api.CreateBlogPostRequest
type CreateBlogPostRequest struct {
	Title      string   `json:"title" validate:"required"`
	Slug       string   `json:"slug" validate:"required"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage string   `json:"cover_image"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Featured   bool     `json:"featured"`
	Status     string   `json:"status" validate:"omitempty,oneof=Draft Published"`
}

// swagger:model api.UpdateBlogPostRequest
type UpdateBlogPostRequest struct {
	Title      string   `json:"title" validate:"required"`
	Slug       string   `json:"slug" validate:"required"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage string   `json:"cover_image"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Featured   bool     `json:"featured"`
	Status     string   `json:"status" validate:"required,oneof=Draft Published"`
}
