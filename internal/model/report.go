// File: internal/model/report.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	FileURL     string    `db:"file_url" json:"file_url"`
	Year        int       `db:"year" json:"year"`
	Status      string    `db:"status" json:"status"`
	Downloads   int64     `db:"downloads" json:"downloads"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
