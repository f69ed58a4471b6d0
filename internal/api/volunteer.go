package api

// swagger:model api.CreateVolunteerRequest
type CreateVolunteerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
}

// swagger:model api.UpdateVolunteerRequest
type UpdateVolunteerRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}
