// File: internal/model/job.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status can be "Open" or "Closed"
type Job struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Department   string     `db:"department" json:"department"`
	Location     string     `db:"location" json:"location"`
	Type         string     `db:"type" json:"type"`
	Description  string     `db:"description" json:"description"`
	Requirements string     `db:"requirements" json:"requirements"`
	Deadline     *time.Time `db:"deadline" json:"deadline,omitempty"`
	Status       string     `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
