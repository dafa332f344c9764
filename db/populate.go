package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"dermalead-api/models"
)

/*
Create the admin dashboard account if it does not exist yet.

Credentials come from ADMIN_EMAIL and ADMIN_PASSWORD; development
defaults are used when they are unset (and logged, so nobody ships
them by accident).
*/
func AddAdminUser(ctx context.Context, pool *pgxpool.Pool) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		email = "admin@example.com"
		password = "changeme"
		log.Printf("ADMIN_EMAIL/ADMIN_PASSWORD not set, using development defaults (%s)", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, 'admin')
		ON CONFLICT (email) DO NOTHING
	`
	if _, err := pool.Exec(ctx, query, uuid.New(), "Administrator", email, string(hash)); err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}
	return nil
}

func localized(fake *gofakeit.Faker, generate func() string) []byte {
	doc, _ := json.Marshal(models.LocalizedText{
		EN: generate(), HE: generate(), RU: generate(),
	})
	return doc
}

func populateContent(ctx context.Context, pool *pgxpool.Pool) error {
	fake := gofakeit.New(0)

	keys := []struct{ key, section string }{
		{"home.hero.title", "home"},
		{"home.hero.subtitle", "home"},
		{"home.about", "home"},
		{"event.intro", "event"},
		{"footer.disclaimer", "footer"},
	}
	for _, k := range keys {
		query := `
			INSERT INTO site_content (id, key, section, content, is_html)
			VALUES ($1, $2, $3, $4, FALSE)
			ON CONFLICT (key) DO NOTHING
		`
		doc := localized(fake, func() string { return fake.Sentence(8) })
		if _, err := pool.Exec(ctx, query, uuid.New(), k.key, k.section, doc); err != nil {
			return fmt.Errorf("failed to insert site content %q: %w", k.key, err)
		}
	}
	return nil
}

func populateBlog(ctx context.Context, pool *pgxpool.Pool) error {
	fake := gofakeit.New(0)

	for i := 0; i < 5; i++ {
		query := `
			INSERT INTO blog_posts
				(id, title, slug, content, excerpt, featured_image, author, status, tags, views, published_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 'published', $8, $9, $10)
		`
		slug := fmt.Sprintf("post-%d", i+1)
		slugDoc, _ := json.Marshal(models.LocalizedText{
			EN: slug, HE: slug + "-he", RU: slug + "-ru",
		})
		_, err := pool.Exec(ctx, query,
			uuid.New(),
			localized(fake, func() string { return fake.Sentence(4) }),
			slugDoc,
			localized(fake, func() string { return fake.Paragraph(3, 4, 10, "\n") }),
			localized(fake, func() string { return fake.Sentence(12) }),
			fmt.Sprintf("/images/blog/%d.jpg", i+1),
			fake.Name(),
			[]string{"skincare", "exosomes"},
			fake.Number(0, 500),
			time.Now().AddDate(0, 0, -fake.Number(1, 90)),
		)
		if err != nil {
			return fmt.Errorf("failed to insert blog post: %w", err)
		}
	}
	return nil
}

func populateGalleryAndReviews(ctx context.Context, pool *pgxpool.Pool) error {
	fake := gofakeit.New(0)

	for i := 0; i < 6; i++ {
		query := `
			INSERT INTO gallery_items (id, before_image, after_image, ord)
			VALUES ($1, $2, $3, $4)
		`
		_, err := pool.Exec(ctx, query,
			uuid.New(),
			fmt.Sprintf("/images/gallery/before-%d.jpg", i+1),
			fmt.Sprintf("/images/gallery/after-%d.jpg", i+1),
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert gallery item: %w", err)
		}
	}

	for i := 0; i < 8; i++ {
		query := `
			INSERT INTO reviews (id, name, rating, text)
			VALUES ($1, $2, $3, $4)
		`
		_, err := pool.Exec(ctx, query,
			uuid.New(), fake.Name(), fake.Number(3, 5), fake.Sentence(15),
		)
		if err != nil {
			return fmt.Errorf("failed to insert review: %w", err)
		}
	}
	return nil
}

func populateAnalytics(ctx context.Context, pool *pgxpool.Pool) error {
	fake := gofakeit.New(0)

	paths := []string{"/en", "/he", "/ru", "/en/event", "/he/event", "/en/blog"}
	langs := []string{"en", "he", "ru"}
	for i := 0; i < 200; i++ {
		query := `
			INSERT INTO page_views (id, path, referer, user_agent, ip, language, ts)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		_, err := pool.Exec(ctx, query,
			uuid.New(),
			paths[fake.Number(0, len(paths)-1)],
			fake.URL(),
			fake.UserAgent(),
			fake.IPv4Address(),
			langs[fake.Number(0, len(langs)-1)],
			time.Now().Add(-time.Duration(fake.Number(0, 30*24))*time.Hour),
		)
		if err != nil {
			return fmt.Errorf("failed to insert page view: %w", err)
		}
	}
	return nil
}

/*
Populate the database with fake development data.

Arguments:

	ctx: Request-scoped context.
	pool: A connection pool to the database.
*/
func PopulateDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	if err := populateContent(ctx, pool); err != nil {
		return err
	}
	if err := populateBlog(ctx, pool); err != nil {
		return err
	}
	if err := populateGalleryAndReviews(ctx, pool); err != nil {
		return err
	}
	return populateAnalytics(ctx, pool)
}
