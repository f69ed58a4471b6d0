package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const blogPostColumns = `id, title, slug, excerpt, content, cover_image, category,
	tags, author_id, featured, status, views, created_at, updated_at`

func scanBlogPost(row pgx.Row) (*model.BlogPost, error) {
	p := &model.BlogPost{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.CoverImage,
		&p.Category,
		&p.Tags,
		&p.AuthorID,
		&p.Featured,
		&p.Status,
		&p.Views,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func collectBlogPosts(rows pgx.Rows) ([]model.BlogPost, error) {
	defer rows.Close()
	posts := []model.BlogPost{}
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func ListBlogPosts(ctx context.Context, db database.DB) ([]model.BlogPost, error) {
	rows, err := db.Query(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListBlogPosts: %w", err)
	}
	posts, err := collectBlogPosts(rows)
	if err != nil {
		return nil, fmt.Errorf("ListBlogPosts: %w", err)
	}
	return posts, nil
}

func ListPublishedBlogPosts(ctx context.Context, db database.DB) ([]model.BlogPost, error) {
	rows, err := db.Query(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts
		 WHERE status = 'Published' ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedBlogPosts: %w", err)
	}
	posts, err := collectBlogPosts(rows)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedBlogPosts: %w", err)
	}
	return posts, nil
}

func GetPublishedBlogPostBySlug(ctx context.Context, db database.DB, slug string) (*model.BlogPost, error) {
	row := db.QueryRow(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts
		 WHERE slug = $1 AND status = 'Published'`,
		slug,
	)
	p, err := scanBlogPost(row)
	if err != nil {
		return nil, fmt.Errorf("GetPublishedBlogPostBySlug: %w", err)
	}
	return p, nil
}

func CreateBlogPost(ctx context.Context, db database.DB, p *model.BlogPost) (*model.BlogPost, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO blog_posts (title, slug, excerpt, content, cover_image, category, tags, author_id, featured, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE(NULLIF($10, ''), 'Draft'))
		 RETURNING id, status, views, created_at, updated_at`,
		p.Title,
		p.Slug,
		p.Excerpt,
		p.Content,
		p.CoverImage,
		p.Category,
		p.Tags,
		p.AuthorID,
		p.Featured,
		p.Status,
	)
	if err := row.Scan(&p.ID, &p.Status, &p.Views, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateBlogPost: %w", err)
	}
	return p, nil
}

func UpdateBlogPost(ctx context.Context, db database.DB, p *model.BlogPost) error {
	tag, err := db.Exec(ctx,
		`UPDATE blog_posts
		 SET title = $1, slug = $2, excerpt = $3, content = $4, cover_image = $5,
		     category = $6, tags = $7, featured = $8, status = $9, updated_at = NOW()
		 WHERE id = $10`,
		p.Title,
		p.Slug,
		p.Excerpt,
		p.Content,
		p.CoverImage,
		p.Category,
		p.Tags,
		p.Featured,
		p.Status,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateBlogPost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteBlogPost(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteBlogPost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
