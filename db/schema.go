package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Localized text lives in JSONB documents keyed by locale so content
// editors can add a translation without a schema change.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'editor',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS token_blacklist (
		token TEXT PRIMARY KEY,
		expires_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS site_content (
		id UUID PRIMARY KEY,
		key TEXT NOT NULL UNIQUE,
		section TEXT NOT NULL,
		content JSONB NOT NULL,
		is_html BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS seo_settings (
		id UUID PRIMARY KEY,
		page TEXT NOT NULL UNIQUE,
		title JSONB NOT NULL,
		description JSONB NOT NULL,
		keywords JSONB NOT NULL DEFAULT '{}',
		og_image TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id UUID PRIMARY KEY,
		title JSONB NOT NULL,
		slug JSONB NOT NULL,
		content JSONB NOT NULL,
		excerpt JSONB NOT NULL,
		featured_image TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'draft',
		tags TEXT[] NOT NULL DEFAULT '{}',
		views INTEGER NOT NULL DEFAULT 0,
		published_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS gallery_items (
		id UUID PRIMARY KEY,
		before_image TEXT NOT NULL,
		after_image TEXT NOT NULL,
		ord INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS page_views (
		id UUID PRIMARY KEY,
		path TEXT NOT NULL,
		referer TEXT NOT NULL DEFAULT '',
		user_agent TEXT NOT NULL DEFAULT '',
		ip TEXT NOT NULL DEFAULT '',
		language TEXT NOT NULL DEFAULT 'en',
		ts TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS form_submissions (
		id UUID PRIMARY KEY,
		form_type TEXT NOT NULL,
		successful BOOLEAN NOT NULL DEFAULT TRUE,
		language TEXT NOT NULL DEFAULT 'en',
		ts TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_page_views_ts ON page_views (ts)`,
	`CREATE INDEX IF NOT EXISTS idx_page_views_path ON page_views (path)`,
	`CREATE INDEX IF NOT EXISTS idx_form_submissions_ts ON form_submissions (ts)`,
	`CREATE INDEX IF NOT EXISTS idx_site_content_section ON site_content (section)`,
	`CREATE INDEX IF NOT EXISTS idx_gallery_items_ord ON gallery_items (ord)`,
}

// EnsureSchema creates all tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
