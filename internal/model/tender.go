// File: internal/model/tender.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status can be "Open" or "Closed"
type Tender struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Reference   string     `db:"reference" json:"reference"`
	Description string     `db:"description" json:"description"`
	Category    string     `db:"category" json:"category"`
	DocumentURL string     `db:"document_url" json:"document_url"`
	Deadline    *time.Time `db:"deadline" json:"deadline,omitempty"`
	Status      string     `db:"status" json:"status"`
	Downloads   int64      `db:"downloads" json:"downloads"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
