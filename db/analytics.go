package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"dermalead-api/models"
)

// AnalyticsStore records page views and form submissions and builds the
// admin report. Plain counters and group-bys, nothing transactional.
type AnalyticsStore struct {
	pool *pgxpool.Pool
}

func NewAnalyticsStore(pool *pgxpool.Pool) *AnalyticsStore {
	return &AnalyticsStore{pool: pool}
}

// RecordPageView stores a single page visit.
func (s *AnalyticsStore) RecordPageView(ctx context.Context, view models.PageView) error {
	query := `
		INSERT INTO page_views (id, path, referer, user_agent, ip, language)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, query,
		uuid.New(), view.Path, view.Referer, view.UserAgent, view.IP, view.Language,
	)
	if err != nil {
		return fmt.Errorf("failed to record page view: %w", err)
	}
	return nil
}

// RecordFormSubmission stores a lead form delivery outcome. Implements
// the submission coordinator's recorder interface.
func (s *AnalyticsStore) RecordFormSubmission(
	ctx context.Context,
	formType string,
	successful bool,
	lang string,
) error {
	query := `
		INSERT INTO form_submissions (id, form_type, successful, language)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.pool.Exec(ctx, query, uuid.New(), formType, successful, lang); err != nil {
		return fmt.Errorf("failed to record form submission: %w", err)
	}
	return nil
}

func (s *AnalyticsStore) countBuckets(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]models.CountBucket, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := []models.CountBucket{}
	for rows.Next() {
		var b models.CountBucket
		if err := rows.Scan(&b.Key, &b.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// BuildReport aggregates page views and form submissions between start
// and end, plus the most viewed blog posts.
func (s *AnalyticsStore) BuildReport(
	ctx context.Context,
	start, end time.Time,
) (*models.AnalyticsReport, error) {
	report := &models.AnalyticsReport{
		StartDate: start.Format(time.RFC3339),
		EndDate:   end.Format(time.RFC3339),
	}

	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM page_views WHERE ts BETWEEN $1 AND $2`,
		start, end,
	).Scan(&report.TotalViews)
	if err != nil {
		return nil, fmt.Errorf("failed to count page views: %w", err)
	}

	report.ViewsByPath, err = s.countBuckets(ctx, `
		SELECT path, COUNT(*) FROM page_views
		WHERE ts BETWEEN $1 AND $2
		GROUP BY path ORDER BY COUNT(*) DESC LIMIT 10
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to group views by path: %w", err)
	}

	report.ViewsByLang, err = s.countBuckets(ctx, `
		SELECT language, COUNT(*) FROM page_views
		WHERE ts BETWEEN $1 AND $2
		GROUP BY language ORDER BY COUNT(*) DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to group views by language: %w", err)
	}

	report.ViewsByDay, err = s.countBuckets(ctx, `
		SELECT TO_CHAR(ts, 'YYYY-MM-DD'), COUNT(*) FROM page_views
		WHERE ts BETWEEN $1 AND $2
		GROUP BY 1 ORDER BY 1
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to group views by day: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM form_submissions WHERE ts BETWEEN $1 AND $2`,
		start, end,
	).Scan(&report.TotalForms)
	if err != nil {
		return nil, fmt.Errorf("failed to count form submissions: %w", err)
	}

	report.FormsByType, err = s.countBuckets(ctx, `
		SELECT form_type, COUNT(*) FROM form_submissions
		WHERE ts BETWEEN $1 AND $2
		GROUP BY form_type ORDER BY COUNT(*) DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to group submissions by type: %w", err)
	}

	report.FormsByStatus, err = s.countBuckets(ctx, `
		SELECT CASE WHEN successful THEN 'successful' ELSE 'failed' END, COUNT(*)
		FROM form_submissions
		WHERE ts BETWEEN $1 AND $2
		GROUP BY 1
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to group submissions by status: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT title, slug, views FROM blog_posts
		ORDER BY views DESC LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top blog posts: %w", err)
	}
	defer rows.Close()

	report.TopPosts = []models.TopBlogPost{}
	for rows.Next() {
		var p models.TopBlogPost
		if err := rows.Scan(&p.Title, &p.Slug, &p.Views); err != nil {
			return nil, fmt.Errorf("failed to scan top blog post: %w", err)
		}
		report.TopPosts = append(report.TopPosts, p)
	}

	return report, rows.Err()
}
