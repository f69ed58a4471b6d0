package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const contactMessageColumns = `id, name, email, phone, subject, message, status, created_at, updated_at`

func scanContactMessage(row pgx.Row) (*model.ContactMessage, error) {
	m := &model.ContactMessage{}
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Subject,
		&m.Message,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func ListContactMessages(ctx context.Context, db database.DB) ([]model.ContactMessage, error) {
	rows, err := db.Query(ctx,
		`SELECT `+contactMessageColumns+` FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListContactMessages: %w", err)
	}
	defer rows.Close()
	messages := []model.ContactMessage{}
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("ListContactMessages: %w", err)
		}
		messages = append(messages, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListContactMessages: %w", err)
	}
	return messages, nil
}

// CreateContactMessage omits status so the table default "Pending" applies.
func CreateContactMessage(ctx context.Context, db database.DB, m *model.ContactMessage) (*model.ContactMessage, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, phone, subject, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, status, created_at, updated_at`,
		m.Name,
		m.Email,
		m.Phone,
		m.Subject,
		m.Message,
	)
	if err := row.Scan(&m.ID, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateContactMessage: %w", err)
	}
	return m, nil
}

func UpdateContactMessageStatus(ctx context.Context, db database.DB, id uuid.UUID, status string) error {
	tag, err := db.Exec(ctx,
		`UPDATE contact_messages SET status = $1, updated_at = NOW() WHERE id = $2`,
		status,
		id,
	)
	if err != nil {
		return fmt.Errorf("UpdateContactMessageStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteContactMessage(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteContactMessage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
