// File: internal/model/volunteer.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status can be "Pending", "Approved" or "Rejected"
type Volunteer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Interest  string    `db:"interest" json:"interest"`
	Message   string    `db:"message" json:"message"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
