// File: internal/stats/stats.go

// Package stats batches engagement counter increments so public traffic
// does not issue one UPDATE per page view. Handlers call Add; a cron job
// drains the buffer into Postgres.
package stats

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"hopebridge/internal/database"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Counter names one incrementable column. Only the fixed set below is ever
// interpolated into SQL.
type Counter struct {
	Table  string
	Column string
}

var (
	BlogViews       = Counter{"blog_posts", "views"}
	StoryViews      = Counter{"stories", "views"}
	StoryLikes      = Counter{"stories", "likes"}
	VideoViews      = Counter{"videos", "views"}
	TenderDownloads = Counter{"tenders", "downloads"}
	ReportDownloads = Counter{"reports", "downloads"}
)

type entry struct {
	counter Counter
	id      uuid.UUID
}

type Buffer struct {
	db database.DB

	mu     sync.Mutex
	counts map[entry]int64
}

func NewBuffer(db database.DB) *Buffer {
	return &Buffer{db: db, counts: make(map[entry]int64)}
}

// Add records one increment. Safe for concurrent use.
func (b *Buffer) Add(c Counter, id uuid.UUID) {
	b.mu.Lock()
	b.counts[entry{c, id}]++
	b.mu.Unlock()
}

// Flush applies the buffered increments, one UPDATE per touched row.
// A failed row keeps its count for the next flush.
func (b *Buffer) Flush(ctx context.Context) error {
	b.mu.Lock()
	pending := b.counts
	b.counts = make(map[entry]int64)
	b.mu.Unlock()

	var errs []error
	for e, n := range pending {
		sql := fmt.Sprintf(`UPDATE %s SET %s = %s + $1 WHERE id = $2`,
			e.counter.Table, e.counter.Column, e.counter.Column)
		if _, err := b.db.Exec(ctx, sql, n, e.id); err != nil {
			b.mu.Lock()
			b.counts[e] += n
			b.mu.Unlock()
			errs = append(errs, fmt.Errorf("stats: flush %s.%s: %w", e.counter.Table, e.counter.Column, err))
		}
	}
	return errors.Join(errs...)
}

// Schedule registers a periodic flush on the given cron runner.
func (b *Buffer) Schedule(c *cron.Cron, spec string) error {
	_, err := c.AddFunc(spec, func() {
		if err := b.Flush(context.Background()); err != nil {
			log.Printf("stats: %v", err)
		}
	})
	return err
}
