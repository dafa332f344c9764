package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported site locales.
const (
	LocaleEN = "en"
	LocaleHE = "he"
	LocaleRU = "ru"
)

// LocalizedText holds one string per site locale. Stored as a single
// JSONB document in the content tables.
type LocalizedText struct {
	EN string `json:"en"`
	HE string `json:"he"`
	RU string `json:"ru"`
}

// LocalizedKeywords holds SEO keyword lists per locale.
type LocalizedKeywords struct {
	EN []string `json:"en"`
	HE []string `json:"he"`
	RU []string `json:"ru"`
}

// User represents an admin dashboard account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// SiteContent is a single editable text fragment, addressed by key.
type SiteContent struct {
	ID        uuid.UUID     `json:"id"`
	Key       string        `json:"key"`
	Section   string        `json:"section"`
	Content   LocalizedText `json:"content"`
	IsHTML    bool          `json:"is_html"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// SeoSettings are the per-page SEO metadata documents.
type SeoSettings struct {
	ID          uuid.UUID         `json:"id"`
	Page        string            `json:"page"`
	Title       LocalizedText     `json:"title"`
	Description LocalizedText     `json:"description"`
	Keywords    LocalizedKeywords `json:"keywords"`
	OGImage     string            `json:"og_image,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Blog post publication states.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// BlogPost is a localized article with a per-post view counter.
type BlogPost struct {
	ID            uuid.UUID     `json:"id"`
	Title         LocalizedText `json:"title"`
	Slug          LocalizedText `json:"slug"`
	Content       LocalizedText `json:"content"`
	Excerpt       LocalizedText `json:"excerpt"`
	FeaturedImage string        `json:"featured_image"`
	Author        string        `json:"author"`
	Status        string        `json:"status"`
	Tags          []string      `json:"tags"`
	Views         int           `json:"views"`
	PublishedAt   *time.Time    `json:"published_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// GalleryItem is a before/after image pair shown on the results page.
type GalleryItem struct {
	ID          uuid.UUID `json:"id"`
	BeforeImage string    `json:"before_image"`
	AfterImage  string    `json:"after_image"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

// Review is a customer testimonial, rating 1 through 5.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PageView is a single recorded page visit.
type PageView struct {
	ID        uuid.UUID `json:"id"`
	Path      string    `json:"path"`
	Referer   string    `json:"referer"`
	UserAgent string    `json:"user_agent"`
	IP        string    `json:"ip"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}

// Form submission types recorded for analytics.
const (
	FormTypeContact = "contact"
	FormTypeEvent   = "event"
)

// FormSubmission records the outcome of a lead form delivery attempt.
type FormSubmission struct {
	ID         uuid.UUID `json:"id"`
	FormType   string    `json:"form_type"`
	Successful bool      `json:"successful"`
	Language   string    `json:"language"`
	Timestamp  time.Time `json:"timestamp"`
}
