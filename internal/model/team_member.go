// File: internal/model/team_member.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Title     string    `db:"title" json:"title"`
	Bio       string    `db:"bio" json:"bio"`
	Photo     string    `db:"photo" json:"photo"`
	Email     string    `db:"email" json:"email"`
	LinkedIn  string    `db:"linkedin" json:"linkedin"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
