// File: internal/schema/schema.go

// Package schema lazily creates the database objects each domain needs.
// Every handler calls Ensure for its domain before touching a table, so
// no separate migration step has to run before the service can serve.
package schema

import (
	"context"
	"fmt"
	"sync"

	"hopebridge/internal/database"
)

// Domain names one resource area whose tables are bootstrapped together.
type Domain string

const (
	DomainBlog       Domain = "blog"
	DomainStories    Domain = "stories"
	DomainVideos     Domain = "videos"
	DomainGallery    Domain = "gallery"
	DomainTeam       Domain = "team"
	DomainTenders    Domain = "tenders"
	DomainJobs       Domain = "jobs"
	DomainReports    Domain = "reports"
	DomainContacts   Domain = "contacts"
	DomainVolunteers Domain = "volunteers"
	DomainNewsletter Domain = "newsletter"
)

// coreDDL runs before any domain DDL: the uuid extension plus admin_users,
// which some domain tables reference by foreign key.
var coreDDL = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'editor',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

var domainDDL = map[Domain][]string{
	DomainBlog: {
		`CREATE TABLE IF NOT EXISTS blog_posts (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title TEXT NOT NULL,
			slug TEXT UNIQUE NOT NULL,
			excerpt TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			cover_image TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			author_id UUID REFERENCES admin_users(id) ON DELETE SET NULL,
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			status TEXT NOT NULL DEFAULT 'Draft',
			views BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	DomainStories: {
		`CREATE TABLE IF NOT EXISTS stories (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title TEXT NOT NULL,
			slug TEXT UNIQUE NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			status TEXT NOT NULL DEFAULT 'Draft',
			views BIGINT NOT NULL DEFAULT 0,
			likes BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	DomainVideos: {
		`CREATE TABLE IF NOT EXISTS videos (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL,
			thumbnail TEXT NOT NULL DEFAULT '',
			duration TEXT NOT NULL DEFAULT '',
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			status TEXT NOT NULL DEFAULT 'Published',
			views BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	DomainGallery: {
		`CREATE TABLE IF NOT EXISTS gallery_images (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	DomainTeam: {
		`CREATE TABLE IF NOT EXISTS team_members (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			bio TEXT NOT NULL DEFAULT '',
			photo TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			linkedin TEXT NOT NULL DEFAULT '',
			sort_order INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	DomainTenders: {
		`CREATE TABLE IF NOT EXISTS tenders (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title TEXT NOT NULL,
			reference TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			document_url TEXT NOT NULL DEFAULT '',
			deadline TIMESTAMPTZ,
			status TEXT NOT NULL DEFAULT 'Open',
			downloads BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	DomainJobs: {
		`CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title TEXT NOT NULL,
			department TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT 'Full-time',
			description TEXT NOT NULL DEFAULT '',
			requirements TEXT NOT NULL DEFAULT '',
			deadline TIMESTAMPTZ,
			status TEXT NOT NULL DEFAULT 'Open',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	DomainReports: {
		`CREATE TABLE IF NOT EXISTS reports (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			file_url TEXT NOT NULL,
			year INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'Published',
			downloads BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	DomainContacts: {
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			subject TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'Pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	DomainVolunteers: {
		`CREATE TABLE IF NOT EXISTS volunteers (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			interest TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	DomainNewsletter: {
		`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			email TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
}

// Bootstrapper runs the idempotent DDL for each domain at most once per
// process. Concurrent first callers serialize on the mutex and later ones
// observe the recorded result; a failed attempt is not recorded, so the
// next request retries instead of wedging the domain.
type Bootstrapper struct {
	db database.DB

	mu       sync.Mutex
	coreDone bool
	done     map[Domain]bool
}

func New(db database.DB) *Bootstrapper {
	return &Bootstrapper{db: db, done: make(map[Domain]bool)}
}

// EnsureCore creates the uuid extension and the admin_users table.
func (b *Bootstrapper) EnsureCore(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ensureCoreLocked(ctx)
}

func (b *Bootstrapper) ensureCoreLocked(ctx context.Context) error {
	if b.coreDone {
		return nil
	}
	for _, stmt := range coreDDL {
		if _, err := b.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema: core bootstrap: %w", err)
		}
	}
	b.coreDone = true
	return nil
}

// Ensure guarantees the named domain's tables exist. The core bootstrap
// always runs first because domain tables may reference admin_users.
func (b *Bootstrapper) Ensure(ctx context.Context, d Domain) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.done[d] {
		return nil
	}
	stmts, ok := domainDDL[d]
	if !ok {
		return fmt.Errorf("schema: unknown domain %q", d)
	}
	if err := b.ensureCoreLocked(ctx); err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := b.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema: bootstrap %s: %w", d, err)
		}
	}
	b.done[d] = true
	return nil
}
