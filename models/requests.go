package models

// Expected login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Expected contact form payload. Fields arrive raw; the server
// re-validates everything before any delivery call.
type ContactFormRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Profession string `json:"profession"`
	Consent    bool   `json:"consent"`
	Lang       string `json:"lang"`
}

// Expected event ticket purchase payload. The total price is never
// taken from the client; it is recomputed from the configured unit
// price, the quantity and the promo code.
type EventFormRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IDNumber  string `json:"id_number"`
	Quantity  int    `json:"quantity"`
	PromoCode string `json:"promo_code"`
	Consent   bool   `json:"consent"`
	Lang      string `json:"lang"`
}

// Expected promo code check payload.
type PromoCheckRequest struct {
	Code string `json:"code"`
}

// Expected page view payload.
type PageViewRequest struct {
	Path     string `json:"path"`
	Referer  string `json:"referer"`
	Language string `json:"language"`
}

// Expected create/update site content payload.
type SiteContentRequest struct {
	Key     string        `json:"key"`
	Section string        `json:"section"`
	Content LocalizedText `json:"content"`
	IsHTML  bool          `json:"is_html"`
}

// Expected create/update SEO settings payload.
type SeoSettingsRequest struct {
	Page        string            `json:"page"`
	Title       LocalizedText     `json:"title"`
	Description LocalizedText     `json:"description"`
	Keywords    LocalizedKeywords `json:"keywords"`
	OGImage     string            `json:"og_image"`
}

// Expected create blog post payload.
type CreateBlogPostRequest struct {
	Title         LocalizedText `json:"title"`
	Slug          LocalizedText `json:"slug"`
	Content       LocalizedText `json:"content"`
	Excerpt       LocalizedText `json:"excerpt"`
	FeaturedImage string        `json:"featured_image"`
	Author        string        `json:"author"`
	Status        string        `json:"status"`
	Tags          []string      `json:"tags"`
}

// Expected update blog post payload.
type UpdateBlogPostRequest struct {
	Title         *LocalizedText `json:"title,omitempty"`
	Slug          *LocalizedText `json:"slug,omitempty"`
	Content       *LocalizedText `json:"content,omitempty"`
	Excerpt       *LocalizedText `json:"excerpt,omitempty"`
	FeaturedImage *string        `json:"featured_image,omitempty"`
	Status        *string        `json:"status,omitempty"`
	Tags          *[]string      `json:"tags,omitempty"`
}

// Expected create gallery item payload.
type CreateGalleryItemRequest struct {
	BeforeImage string `json:"before_image"`
	AfterImage  string `json:"after_image"`
	Order       int    `json:"order"`
}

// Expected update gallery item payload.
type UpdateGalleryItemRequest struct {
	BeforeImage *string `json:"before_image,omitempty"`
	AfterImage  *string `json:"after_image,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

// Expected create review payload.
type CreateReviewRequest struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// Expected update review payload.
type UpdateReviewRequest struct {
	Name   *string `json:"name,omitempty"`
	Rating *int    `json:"rating,omitempty"`
	Text   *string `json:"text,omitempty"`
}
