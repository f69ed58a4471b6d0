package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, department, location, type, description,
	requirements, deadline, status, created_at, updated_at`

func scanJob(row pgx.Row) (*model.Job, error) {
	j := &model.Job{}
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Department,
		&j.Location,
		&j.Type,
		&j.Description,
		&j.Requirements,
		&j.Deadline,
		&j.Status,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func collectJobs(rows pgx.Rows) ([]model.Job, error) {
	defer rows.Close()
	jobs := []model.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func ListJobs(ctx context.Context, db database.DB) ([]model.Job, error) {
	rows, err := db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListJobs: %w", err)
	}
	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, fmt.Errorf("ListJobs: %w", err)
	}
	return jobs, nil
}

func ListOpenJobs(ctx context.Context, db database.DB) ([]model.Job, error) {
	rows, err := db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE status = 'Open' ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListOpenJobs: %w", err)
	}
	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, fmt.Errorf("ListOpenJobs: %w", err)
	}
	return jobs, nil
}

func CreateJob(ctx context.Context, db database.DB, j *model.Job) (*model.Job, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO jobs (title, department, location, type, description, requirements, deadline, status)
		 VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'Full-time'), $5, $6, $7, COALESCE(NULLIF($8, ''), 'Open'))
		 RETURNING id, type, status, created_at, updated_at`,
		j.Title,
		j.Department,
		j.Location,
		j.Type,
		j.Description,
		j.Requirements,
		j.Deadline,
		j.Status,
	)
	if err := row.Scan(&j.ID, &j.Type, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateJob: %w", err)
	}
	return j, nil
}

func UpdateJob(ctx context.Context, db database.DB, j *model.Job) error {
	tag, err := db.Exec(ctx,
		`UPDATE jobs
		 SET title = $1, department = $2, location = $3, type = $4, description = $5,
		     requirements = $6, deadline = $7, status = $8, updated_at = NOW()
		 WHERE id = $9`,
		j.Title,
		j.Department,
		j.Location,
		j.Type,
		j.Description,
		j.Requirements,
		j.Deadline,
		j.Status,
		j.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateJob: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteJob(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteJob: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
