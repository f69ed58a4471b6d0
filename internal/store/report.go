package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reportColumns = `id, title, description, category, file_url, year,
	status, downloads, created_at, updated_at`

func scanReport(row pgx.Row) (*model.Report, error) {
	r := &model.Report{}
	err := row.Scan(
		&r.ID,
		&r.Title,
		&r.Description,
		&r.Category,
		&r.FileURL,
		&r.Year,
		&r.Status,
		&r.Downloads,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func collectReports(rows pgx.Rows) ([]model.Report, error) {
	defer rows.Close()
	reports := []model.Report{}
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *r)
	}
	return reports, rows.Err()
}

func ListReports(ctx context.Context, db database.DB) ([]model.Report, error) {
	rows, err := db.Query(ctx,
		`SELECT `+reportColumns+` FROM reports ORDER BY year DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListReports: %w", err)
	}
	reports, err := collectReports(rows)
	if err != nil {
		return nil, fmt.Errorf("ListReports: %w", err)
	}
	return reports, nil
}

func ListPublishedReports(ctx context.Context, db database.DB) ([]model.Report, error) {
	rows, err := db.Query(ctx,
		`SELECT `+reportColumns+` FROM reports
		 WHERE status = 'Published' ORDER BY year DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedReports: %w", err)
	}
	reports, err := collectReports(rows)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedReports: %w", err)
	}
	return reports, nil
}

func GetReportByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.Report, error) {
	row := db.QueryRow(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
	r, err := scanReport(row)
	if err != nil {
		return nil, fmt.Errorf("GetReportByID: %w", err)
	}
	return r, nil
}

func CreateReport(ctx context.Context, db database.DB, r *model.Report) (*model.Report, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reports (title, description, category, file_url, year, status)
		 VALUES ($1, $2, $3, $4, $5, COALESCE(NULLIF($6, ''), 'Published'))
		 RETURNING id, status, downloads, created_at, updated_at`,
		r.Title,
		r.Description,
		r.Category,
		r.FileURL,
		r.Year,
		r.Status,
	)
	if err := row.Scan(&r.ID, &r.Status, &r.Downloads, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateReport: %w", err)
	}
	return r, nil
}

func UpdateReport(ctx context.Context, db database.DB, r *model.Report) error {
	tag, err := db.Exec(ctx,
		`UPDATE reports
		 SET title = $1, description = $2, category = $3, file_url = $4,
		     year = $5, status = $6, updated_at = NOW()
		 WHERE id = $7`,
		r.Title,
		r.Description,
		r.Category,
		r.FileURL,
		r.Year,
		r.Status,
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateReport: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteReport(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteReport: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
