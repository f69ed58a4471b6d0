package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const volunteerColumns = `id, name, email, phone, interest, message, status, created_at, updated_at`

func scanVolunteer(row pgx.Row) (*model.Volunteer, error) {
	v := &model.Volunteer{}
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Email,
		&v.Phone,
		&v.Interest,
		&v.Message,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func ListVolunteers(ctx context.Context, db database.DB) ([]model.Volunteer, error) {
	rows, err := db.Query(ctx,
		`SELECT `+volunteerColumns+` FROM volunteers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListVolunteers: %w", err)
	}
	defer rows.Close()
	volunteers := []model.Volunteer{}
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, fmt.Errorf("ListVolunteers: %w", err)
		}
		volunteers = append(volunteers, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListVolunteers: %w", err)
	}
	return volunteers, nil
}

// CreateVolunteer omits status so the table default "Pending" applies.
func CreateVolunteer(ctx context.Context, db database.DB, v *model.Volunteer) (*model.Volunteer, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO volunteers (name, email, phone, interest, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, status, created_at, updated_at`,
		v.Name,
		v.Email,
		v.Phone,
		v.Interest,
		v.Message,
	)
	if err := row.Scan(&v.ID, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateVolunteer: %w", err)
	}
	return v, nil
}

func UpdateVolunteerStatus(ctx context.Context, db database.DB, id uuid.UUID, status string) error {
	tag, err := db.Exec(ctx,
		`UPDATE volunteers SET status = $1, updated_at = NOW() WHERE id = $2`,
		status,
		id,
	)
	if err != nil {
		return fmt.Errorf("UpdateVolunteerStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteVolunteer(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM volunteers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteVolunteer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
