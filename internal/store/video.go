package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const videoColumns = `id, title, description, url, thumbnail, duration,
	featured, status, views, created_at, updated_at`

func scanVideo(row pgx.Row) (*model.Video, error) {
	v := &model.Video{}
	err := row.Scan(
		&v.ID,
		&v.Title,
		&v.Description,
		&v.URL,
		&v.Thumbnail,
		&v.Duration,
		&v.Featured,
		&v.Status,
		&v.Views,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func collectVideos(rows pgx.Rows) ([]model.Video, error) {
	defer rows.Close()
	videos := []model.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	return videos, rows.Err()
}

func ListVideos(ctx context.Context, db database.DB) ([]model.Video, error) {
	rows, err := db.Query(ctx,
		`SELECT `+videoColumns+` FROM videos ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListVideos: %w", err)
	}
	videos, err := collectVideos(rows)
	if err != nil {
		return nil, fmt.Errorf("ListVideos: %w", err)
	}
	return videos, nil
}

func ListPublishedVideos(ctx context.Context, db database.DB) ([]model.Video, error) {
	rows, err := db.Query(ctx,
		`SELECT `+videoColumns+` FROM videos
		 WHERE status = 'Published' ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedVideos: %w", err)
	}
	videos, err := collectVideos(rows)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedVideos: %w", err)
	}
	return videos, nil
}

func CreateVideo(ctx context.Context, db database.DB, v *model.Video) (*model.Video, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO videos (title, description, url, thumbnail, duration, featured, status)
		 VALUES ($1, $2, $3, $4, $5, $6, COALESCE(NULLIF($7, ''), 'Published'))
		 RETURNING id, status, views, created_at, updated_at`,
		v.Title,
		v.Description,
		v.URL,
		v.Thumbnail,
		v.Duration,
		v.Featured,
		v.Status,
	)
	if err := row.Scan(&v.ID, &v.Status, &v.Views, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateVideo: %w", err)
	}
	return v, nil
}

func UpdateVideo(ctx context.Context, db database.DB, v *model.Video) error {
	tag, err := db.Exec(ctx,
		`UPDATE videos
		 SET title = $1, description = $2, url = $3, thumbnail = $4,
		     duration = $5, featured = $6, status = $7, updated_at = NOW()
		 WHERE id = $8`,
		v.Title,
		v.Description,
		v.URL,
		v.Thumbnail,
		v.Duration,
		v.Featured,
		v.Status,
		v.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateVideo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteVideo(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteVideo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
