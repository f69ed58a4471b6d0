package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const tenderColumns = `id, title, reference, description, category, document_url,
	deadline, status, downloads, created_at, updated_at`

func scanTender(row pgx.Row) (*model.Tender, error) {
	t := &model.Tender{}
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Reference,
		&t.Description,
		&t.Category,
		&t.DocumentURL,
		&t.Deadline,
		&t.Status,
		&t.Downloads,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func collectTenders(rows pgx.Rows) ([]model.Tender, error) {
	defer rows.Close()
	tenders := []model.Tender{}
	for rows.Next() {
		t, err := scanTender(rows)
		if err != nil {
			return nil, err
		}
		tenders = append(tenders, *t)
	}
	return tenders, rows.Err()
}

func ListTenders(ctx context.Context, db database.DB) ([]model.Tender, error) {
	rows, err := db.Query(ctx,
		`SELECT `+tenderColumns+` FROM tenders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListTenders: %w", err)
	}
	tenders, err := collectTenders(rows)
	if err != nil {
		return nil, fmt.Errorf("ListTenders: %w", err)
	}
	return tenders, nil
}

func ListOpenTenders(ctx context.Context, db database.DB) ([]model.Tender, error) {
	rows, err := db.Query(ctx,
		`SELECT `+tenderColumns+` FROM tenders
		 WHERE status = 'Open' ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListOpenTenders: %w", err)
	}
	tenders, err := collectTenders(rows)
	if err != nil {
		return nil, fmt.Errorf("ListOpenTenders: %w", err)
	}
	return tenders, nil
}

func GetTenderByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.Tender, error) {
	row := db.QueryRow(ctx,
		`SELECT `+tenderColumns+` FROM tenders WHERE id = $1`, id)
	t, err := scanTender(row)
	if err != nil {
		return nil, fmt.Errorf("GetTenderByID: %w", err)
	}
	return t, nil
}

func CreateTender(ctx context.Context, db database.DB, t *model.Tender) (*model.Tender, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO tenders (title, reference, description, category, document_url, deadline, status)
		 VALUES ($1, $2, $3, $4, $5, $6, COALESCE(NULLIF($7, ''), 'Open'))
		 RETURNING id, status, downloads, created_at, updated_at`,
		t.Title,
		t.Reference,
		t.Description,
		t.Category,
		t.DocumentURL,
		t.Deadline,
		t.Status,
	)
	if err := row.Scan(&t.ID, &t.Status, &t.Downloads, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateTender: %w", err)
	}
	return t, nil
}

func UpdateTender(ctx context.Context, db database.DB, t *model.Tender) error {
	tag, err := db.Exec(ctx,
		`UPDATE tenders
		 SET title = $1, reference = $2, description = $3, category = $4,
		     document_url = $5, deadline = $6, status = $7, updated_at = NOW()
		 WHERE id = $8`,
		t.Title,
		t.Reference,
		t.Description,
		t.Category,
		t.DocumentURL,
		t.Deadline,
		t.Status,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateTender: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTender(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM tenders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteTender: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
