package site

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hopebridge/internal/database"
	"hopebridge/internal/model"
	"hopebridge/internal/schema"
	"hopebridge/internal/stats"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeBlogRow struct {
	post *model.BlogPost
	err  error
}

func (r fakeBlogRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	p := r.post
	*dest[0].(*uuid.UUID) = p.ID
	*dest[1].(*string) = p.Title
	*dest[2].(*string) = p.Slug
	*dest[3].(*string) = p.Excerpt
	*dest[4].(*string) = p.Content
	*dest[5].(*string) = p.CoverImage
	*dest[6].(*string) = p.Category
	*dest[7].(*[]string) = p.Tags
	*dest[8].(**uuid.UUID) = p.AuthorID
	*dest[9].(*bool) = p.Featured
	*dest[10].(*string) = p.Status
	*dest[11].(*int64) = p.Views
	*dest[12].(*time.Time) = p.CreatedAt
	*dest[13].(*time.Time) = p.UpdatedAt
	return nil
}

func TestGetBlogPostHandler(t *testing.T) {
	post := &model.BlogPost{ID: uuid.New(), Title: "Title", Slug: "hello", Status: "Published"}

	t.Run("found and view buffered", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: ddlExec,
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "status = 'Published'")
				require.Equal(t, []any{"hello"}, args)
				return fakeBlogRow{post: post}
			},
		}
		buf := stats.NewBuffer(db)
		ctx, rec := newSiteCtx(http.MethodGet, "/", "")
		ctx.SetParamNames("slug")
		ctx.SetParamValues("hello")

		require.NoError(t, GetBlogPostHandler(db, schema.New(db), buf)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), post.ID.String())

		// the view landed in the buffer
		var flushed []any
		db.ExecFn = func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "UPDATE blog_posts SET views")
			flushed = args
			return pgconn.NewCommandTag("UPDATE 1"), nil
		}
		require.NoError(t, buf.Flush(context.Background()))
		require.Equal(t, []any{int64(1), post.ID}, flushed)
	})

	t.Run("draft or missing slug is 404", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: ddlExec,
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return fakeBlogRow{err: pgx.ErrNoRows}
			},
		}
		ctx, rec := newSiteCtx(http.MethodGet, "/", "")
		ctx.SetParamNames("slug")
		ctx.SetParamValues("draft-post")

		require.NoError(t, GetBlogPostHandler(db, schema.New(db), stats.NewBuffer(db))(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
