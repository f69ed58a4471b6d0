package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const galleryImageColumns = `id, title, description, image_url, category, status, created_at, updated_at`

func scanGalleryImage(row pgx.Row) (*model.GalleryImage, error) {
	g := &model.GalleryImage{}
	err := row.Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.ImageURL,
		&g.Category,
		&g.Status,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func collectGalleryImages(rows pgx.Rows) ([]model.GalleryImage, error) {
	defer rows.Close()
	images := []model.GalleryImage{}
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, *g)
	}
	return images, rows.Err()
}

func ListGalleryImages(ctx context.Context, db database.DB) ([]model.GalleryImage, error) {
	rows, err := db.Query(ctx,
		`SELECT `+galleryImageColumns+` FROM gallery_images ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListGalleryImages: %w", err)
	}
	images, err := collectGalleryImages(rows)
	if err != nil {
		return nil, fmt.Errorf("ListGalleryImages: %w", err)
	}
	return images, nil
}

func ListActiveGalleryImages(ctx context.Context, db database.DB) ([]model.GalleryImage, error) {
	rows, err := db.Query(ctx,
		`SELECT `+galleryImageColumns+` FROM gallery_images
		 WHERE status = 'active' ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListActiveGalleryImages: %w", err)
	}
	images, err := collectGalleryImages(rows)
	if err != nil {
		return nil, fmt.Errorf("ListActiveGalleryImages: %w", err)
	}
	return images, nil
}

func CreateGalleryImage(ctx context.Context, db database.DB, g *model.GalleryImage) (*model.GalleryImage, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO gallery_images (title, description, image_url, category, status)
		 VALUES ($1, $2, $3, $4, COALESCE(NULLIF($5, ''), 'active'))
		 RETURNING id, status, created_at, updated_at`,
		g.Title,
		g.Description,
		g.ImageURL,
		g.Category,
		g.Status,
	)
	if err := row.Scan(&g.ID, &g.Status, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateGalleryImage: %w", err)
	}
	return g, nil
}

func UpdateGalleryImage(ctx context.Context, db database.DB, g *model.GalleryImage) error {
	tag, err := db.Exec(ctx,
		`UPDATE gallery_images
		 SET title = $1, description = $2, image_url = $3, category = $4,
		     status = $5, updated_at = NOW()
		 WHERE id = $6`,
		g.Title,
		g.Description,
		g.ImageURL,
		g.Category,
		g.Status,
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateGalleryImage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteGalleryImage(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteGalleryImage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
