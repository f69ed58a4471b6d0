// File: internal/model/blog_post.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status can be "Draft" or "Published"
type BlogPost struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Slug       string     `db:"slug" json:"slug"`
	Excerpt    string     `db:"excerpt" json:"excerpt"`
	Content    string     `db:"content" json:"content"`
	CoverImage string     `db:"cover_image" json:"cover_image"`
	Category   string     `db:"category" json:"category"`
	Tags       []string   `db:"tags" json:"tags"`
	AuthorID   *uuid.UUID `db:"author_id" json:"author_id,omitempty"`
	Featured   bool       `db:"featured" json:"featured"`
	Status     string     `db:"status" json:"status"`
	Views      int64      `db:"views" json:"views"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}
