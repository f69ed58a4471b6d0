// File: internal/model/story.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status can be "Draft" or "Published"
type Story struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Slug      string    `db:"slug" json:"slug"`
	Summary   string    `db:"summary" json:"summary"`
	Content   string    `db:"content" json:"content"`
	Image     string    `db:"image" json:"image"`
	Location  string    `db:"location" json:"location"`
	Featured  bool      `db:"featured" json:"featured"`
	Status    string    `db:"status" json:"status"`
	Views     int64     `db:"views" json:"views"`
	Likes     int64     `db:"likes" json:"likes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
