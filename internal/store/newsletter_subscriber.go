package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const subscriberColumns = `id, email, name, status, created_at, updated_at`

func scanSubscriber(row pgx.Row) (*model.NewsletterSubscriber, error) {
	s := &model.NewsletterSubscriber{}
	err := row.Scan(
		&s.ID,
		&s.Email,
		&s.Name,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func ListSubscribers(ctx context.Context, db database.DB) ([]model.NewsletterSubscriber, error) {
	rows, err := db.Query(ctx,
		`SELECT `+subscriberColumns+` FROM newsletter_subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListSubscribers: %w", err)
	}
	defer rows.Close()
	subs := []model.NewsletterSubscriber{}
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("ListSubscribers: %w", err)
		}
		subs = append(subs, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSubscribers: %w", err)
	}
	return subs, nil
}

// Subscribe inserts a subscriber or, when the email already exists,
// reactivates it. Returns true when a new row was created.
func Subscribe(ctx context.Context, db database.DB, s *model.NewsletterSubscriber) (bool, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO newsletter_subscribers (email, name)
		 VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE
		 SET status = 'active', updated_at = NOW()
		 RETURNING id, status, created_at, updated_at, (xmax = 0) AS inserted`,
		s.Email,
		s.Name,
	)
	var inserted bool
	if err := row.Scan(&s.ID, &s.Status, &s.CreatedAt, &s.UpdatedAt, &inserted); err != nil {
		return false, fmt.Errorf("Subscribe: %w", err)
	}
	return inserted, nil
}

func UpdateSubscriberStatus(ctx context.Context, db database.DB, id uuid.UUID, status string) error {
	tag, err := db.Exec(ctx,
		`UPDATE newsletter_subscribers SET status = $1, updated_at = NOW() WHERE id = $2`,
		status,
		id,
	)
	if err != nil {
		return fmt.Errorf("UpdateSubscriberStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteSubscriber(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM newsletter_subscribers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteSubscriber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
