package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDBPanicsWithoutFns(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Exec(context.Background(), "DELETE FROM blog_posts") })
	require.Panics(t, func() { db.Query(context.Background(), "SELECT 1") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "SELECT 1") })
	require.Panics(t, func() { db.Ping(context.Background()) })
	// Close 未設定時為 no-op，收尾路徑不需要每個測試都宣告。
	db.Close()
}

func TestFakeDBDelegates(t *testing.T) {
	t.Run("exec", func(t *testing.T) {
		var gotSQL string
		var gotArgs []any
		db := &FakeDB{ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			gotSQL = sql
			gotArgs = args
			return pgconn.NewCommandTag("UPDATE 1"), nil
		}}
		tag, err := db.Exec(context.Background(), "UPDATE blog_posts SET views = $1", int64(3))
		require.NoError(t, err)
		require.Equal(t, int64(1), tag.RowsAffected())
		require.Equal(t, "UPDATE blog_posts SET views = $1", gotSQL)
		require.Equal(t, []any{int64(3)}, gotArgs)
	})

	t.Run("query", func(t *testing.T) {
		db := &FakeDB{QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return emptyRows{}, nil
		}}
		rows, err := db.Query(context.Background(), "SELECT id FROM stories")
		require.NoError(t, err)
		require.False(t, rows.Next())
	})

	t.Run("query row", func(t *testing.T) {
		db := &FakeDB{QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return emptyRows{}
		}}
		row := db.QueryRow(context.Background(), "SELECT id FROM stories WHERE slug = $1", "our-first-year")
		require.NoError(t, row.Scan())
	})

	t.Run("ping and close", func(t *testing.T) {
		pinged := false
		closed := false
		db := &FakeDB{
			PingFn:  func(ctx context.Context) error { pinged = true; return errors.New("down") },
			CloseFn: func() { closed = true },
		}
		require.Error(t, db.Ping(context.Background()))
		db.Close()
		require.True(t, pinged)
		require.True(t, closed)
	})
}
