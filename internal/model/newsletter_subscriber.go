// File: internal/model/newsletter_subscriber.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status can be "active" or "unsubscribed"
type NewsletterSubscriber struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
