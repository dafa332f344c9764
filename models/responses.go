package models

// Standardized response for errors.
type ErrorResponse struct {
	Message string `json:"message" example:"Error message"`
	Status  int    `json:"status"  example:"400"`
}

// Standardized response for successful operations.
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed"`
	Status  int    `json:"status"  example:"200"`
}

// Standardized response for operations that create objects.
type SuccessResponseCreate struct {
	Message string `json:"message" example:"Created successfully"`
	Status  int    `json:"status"  example:"201"`
	ID      string `json:"id"      example:"123e4567-e89b-12d3-a456-426614174000"`
}

// Response after a successful login.
type LoginResponse struct {
	Token   string `json:"token" example:"jwt-token-string"`
	Expires int64  `json:"exp"   example:"12313123"`
	Name    string `json:"name"  example:"Administrator"`
	Role    string `json:"role"  example:"admin"`
}

// Response after a form submission. RedirectTo is the success page for
// the requested locale; PayURL, when present, is the external payment
// page the client should navigate to after briefly showing Message.
type SubmitResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	RedirectTo string `json:"redirect_to,omitempty"`
	PayURL     string `json:"pay_url,omitempty"`
}

// Response for a promo code check.
type PromoCheckResponse struct {
	Valid bool `json:"valid"`
}

// One group/count bucket in an analytics report.
type CountBucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Blog post entry in the analytics top list.
type TopBlogPost struct {
	Title LocalizedText `json:"title"`
	Slug  LocalizedText `json:"slug"`
	Views int           `json:"views"`
}

// Full analytics report for a period.
type AnalyticsReport struct {
	Period        string        `json:"period"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	TotalViews    int           `json:"total_views"`
	ViewsByPath   []CountBucket `json:"views_by_path"`
	ViewsByLang   []CountBucket `json:"views_by_language"`
	ViewsByDay    []CountBucket `json:"views_by_day"`
	TotalForms    int           `json:"total_forms"`
	FormsByType   []CountBucket `json:"forms_by_type"`
	FormsByStatus []CountBucket `json:"forms_by_status"`
	TopPosts      []TopBlogPost `json:"top_posts"`
}
