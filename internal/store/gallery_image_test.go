package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeGalleryRow struct {
	scanErr error
	image   *model.GalleryImage
}

func (r *fakeGalleryRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	g := r.image
	switch len(dest) {
	case 8:
		*dest[0].(*uuid.UUID) = g.ID
		*dest[1].(*string) = g.Title
		*dest[2].(*string) = g.Description
		*dest[3].(*string) = g.ImageURL
		*dest[4].(*string) = g.Category
		*dest[5].(*string) = g.Status
		*dest[6].(*time.Time) = g.CreatedAt
		*dest[7].(*time.Time) = g.UpdatedAt
	case 4:
		*dest[0].(*uuid.UUID) = g.ID
		*dest[1].(*string) = g.Status
		*dest[2].(*time.Time) = g.CreatedAt
		*dest[3].(*time.Time) = g.UpdatedAt
	default:
		panic("fakeGalleryRow.Scan: unexpected dest count")
	}
	return nil
}

type fakeGalleryRows struct {
	data    []model.GalleryImage
	idx     int
	scanErr error
	err     error
}

func (r *fakeGalleryRows) Close()                                       {}
func (r *fakeGalleryRows) Err() error                                   { return r.err }
func (r *fakeGalleryRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeGalleryRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeGalleryRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeGalleryRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	g := r.data[r.idx]
	r.idx++
	return (&fakeGalleryRow{image: &g}).Scan(dest...)
}
func (r *fakeGalleryRows) Values() ([]any, error) { return nil, nil }
func (r *fakeGalleryRows) RawValues() [][]byte    { return nil }
func (r *fakeGalleryRows) Conn() *pgx.Conn        { return nil }

func TestGalleryImageStore(t *testing.T) {
	now := time.Now().UTC()
	id := uuid.New()
	sample := model.GalleryImage{
		ID:        id,
		Title:     "Clinic opening",
		ImageURL:  "https://cdn.example.com/clinic.jpg",
		Category:  "health",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("List ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeGalleryRows{data: []model.GalleryImage{sample}}, nil
			},
		}
		images, err := ListGalleryImages(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, images, 1)
		require.Equal(t, "Clinic opening", images[0].Title)
	})

	t.Run("List query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("down")
			},
		}
		_, err := ListGalleryImages(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("ListActive filters by status", func(t *testing.T) {
		var gotSQL string
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
				gotSQL = sql
				return &fakeGalleryRows{}, nil
			},
		}
		images, err := ListActiveGalleryImages(context.Background(), db)
		require.NoError(t, err)
		require.Empty(t, images)
		require.Contains(t, gotSQL, "status = 'active'")
	})

	t.Run("Create ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeGalleryRow{image: &sample}
			},
		}
		g := &model.GalleryImage{Title: "Clinic opening", ImageURL: sample.ImageURL}
		got, err := CreateGalleryImage(context.Background(), db, g)
		require.NoError(t, err)
		require.Equal(t, id, got.ID)
		require.Equal(t, "active", got.Status)
	})

	t.Run("Update not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		err := UpdateGalleryImage(context.Background(), db, &model.GalleryImage{ID: id})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteGalleryImage(context.Background(), db, id))
	})
}
