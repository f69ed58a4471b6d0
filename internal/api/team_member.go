package api

// swagger:model api.CreateTeamMemberRequest
type CreateTeamMemberRequest struct {
	Name      string `json:"name" validate:"required"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	Photo     string `json:"photo"`
	Email     string `json:"email" validate:"omitempty,email"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
	SortOrder int    `json:"sort_order"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// swagger:model api.UpdateTeamMemberRequest
type UpdateTeamMemberRequest struct {
	Name      string `json:"name" validate:"required"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	Photo     string `json:"photo"`
	Email     string `json:"email" validate:"omitempty,email"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
	SortOrder int    `json:"sort_order"`
	Status    string `json:"status" validate:"required,oneof=active inactive"`
}
