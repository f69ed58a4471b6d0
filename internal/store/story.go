package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const storyColumns = `id, title, slug, summary, content, image, location,
	featured, status, views, likes, created_at, updated_at`

func scanStory(row pgx.Row) (*model.Story, error) {
	s := &model.Story{}
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Slug,
		&s.Summary,
		&s.Content,
		&s.Image,
		&s.Location,
		&s.Featured,
		&s.Status,
		&s.Views,
		&s.Likes,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func collectStories(rows pgx.Rows) ([]model.Story, error) {
	defer rows.Close()
	stories := []model.Story{}
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, *s)
	}
	return stories, rows.Err()
}

func ListStories(ctx context.Context, db database.DB) ([]model.Story, error) {
	rows, err := db.Query(ctx,
		`SELECT `+storyColumns+` FROM stories ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListStories: %w", err)
	}
	stories, err := collectStories(rows)
	if err != nil {
		return nil, fmt.Errorf("ListStories: %w", err)
	}
	return stories, nil
}

func ListPublishedStories(ctx context.Context, db database.DB) ([]model.Story, error) {
	rows, err := db.Query(ctx,
		`SELECT `+storyColumns+` FROM stories
		 WHERE status = 'Published' ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedStories: %w", err)
	}
	stories, err := collectStories(rows)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedStories: %w", err)
	}
	return stories, nil
}

func GetPublishedStoryBySlug(ctx context.Context, db database.DB, slug string) (*model.Story, error) {
	row := db.QueryRow(ctx,
		`SELECT `+storyColumns+` FROM stories
		 WHERE slug = $1 AND status = 'Published'`,
		slug,
	)
	s, err := scanStory(row)
	if err != nil {
		return nil, fmt.Errorf("GetPublishedStoryBySlug: %w", err)
	}
	return s, nil
}

func CreateStory(ctx context.Context, db database.DB, s *model.Story) (*model.Story, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO stories (title, slug, summary, content, image, location, featured, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE(NULLIF($8, ''), 'Draft'))
		 RETURNING id, status, views, likes, created_at, updated_at`,
		s.Title,
		s.Slug,
		s.Summary,
		s.Content,
		s.Image,
		s.Location,
		s.Featured,
		s.Status,
	)
	if err := row.Scan(&s.ID, &s.Status, &s.Views, &s.Likes, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateStory: %w", err)
	}
	return s, nil
}

func UpdateStory(ctx context.Context, db database.DB, s *model.Story) error {
	tag, err := db.Exec(ctx,
		`UPDATE stories
		 SET title = $1, slug = $2, summary = $3, content = $4, image = $5,
		     location = $6, featured = $7, status = $8, updated_at = NOW()
		 WHERE id = $9`,
		s.Title,
		s.Slug,
		s.Summary,
		s.Content,
		s.Image,
		s.Location,
		s.Featured,
		s.Status,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateStory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteStory(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM stories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteStory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
