// File: internal/model/video.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	URL         string    `db:"url" json:"url"`
	Thumbnail   string    `db:"thumbnail" json:"thumbnail"`
	Duration    string    `db:"duration" json:"duration"`
	Featured    bool      `db:"featured" json:"featured"`
	Status      string    `db:"status" json:"status"`
	Views       int64     `db:"views" json:"views"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
