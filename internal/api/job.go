package api

import "time"

// swagger:model api.CreateJobRequest
type CreateJobRequest struct {
	Title        string     `json:"title" validate:"required"`
	Department   string     `json:"department"`
	Location     string     `json:"location"`
	Type         string     `json:"type" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements"`
	Deadline     *time.Time `json:"deadline"`
	Status       string     `json:"status" validate:"omitempty,oneof=Open Closed"`
}

// swagger:model api.UpdateJobRequest
type UpdateJobRequest struct {
	Title        string     `json:"title" validate:"required"`
	Department   string     `json:"department"`
	Location     string     `json:"location"`
	Type         string     `json:"type" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements"`
	Deadline     *time.Time `json:"deadline"`
	Status       string     `json:"status" validate:"required,oneof=Open Closed"`
}
