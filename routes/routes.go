package routes

import (
	"net/http"
	"os"
	"time"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/time/rate"

	"dermalead-api/db"
	"dermalead-api/forms"
	"dermalead-api/middlewares"
	"dermalead-api/routes/handlers"
)

// Group and initialize all routes.
func SetupRoutes(
	pool *pgxpool.Pool,
	jwtSecret string,
	coordinator *forms.Coordinator,
	analytics *db.AnalyticsStore,
) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// lead forms are human-paced, anything faster than this is a bot
	leadLimiter := rate.NewLimiter(rate.Every(time.Second), 10)
	limited := middlewares.RateLimit(leadLimiter)

	// public lead endpoints
	api.Handle("/contact", limited(handlers.ContactFormHandler(coordinator))).Methods(http.MethodPost)
	api.Handle("/event/register", limited(handlers.EventRegisterHandler(coordinator))).Methods(http.MethodPost)
	api.HandleFunc("/event/promo", handlers.CheckPromoHandler(coordinator)).Methods(http.MethodPost)

	// public site content
	api.HandleFunc("/content", handlers.GetContentHandler(pool)).Methods(http.MethodGet)
	api.HandleFunc("/seo", handlers.GetSeoHandler(pool)).Methods(http.MethodGet)
	api.HandleFunc("/blog", handlers.ListBlogPostsHandler(pool)).Methods(http.MethodGet)
	api.HandleFunc("/blog/{slug}", handlers.GetBlogPostHandler(pool)).Methods(http.MethodGet)
	api.HandleFunc("/gallery", handlers.ListGalleryHandler(pool)).Methods(http.MethodGet)
	api.HandleFunc("/reviews", handlers.ListReviewsHandler(pool)).Methods(http.MethodGet)
	api.HandleFunc("/analytics/pageview", handlers.RecordPageViewHandler(analytics)).Methods(http.MethodPost)

	// auth
	api.HandleFunc("/login", handlers.LoginHandler(pool, jwtSecret)).Methods(http.MethodPost)
	api.HandleFunc("/logout", handlers.LogoutHandler(pool, jwtSecret)).Methods(http.MethodPost)

	// admin dashboard, token plus admin role required
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.RequireAuth(pool, jwtSecret))
	admin.Use(middlewares.RequireAdmin())

	admin.HandleFunc("/content", handlers.UpsertContentHandler(pool)).Methods(http.MethodPost)
	admin.HandleFunc("/content/{key}", handlers.DeleteContentHandler(pool)).Methods(http.MethodDelete)
	admin.HandleFunc("/seo", handlers.UpsertSeoHandler(pool)).Methods(http.MethodPost)
	admin.HandleFunc("/blog", handlers.ListBlogPostsHandler(pool)).Methods(http.MethodGet)
	admin.HandleFunc("/blog", handlers.CreateBlogPostHandler(pool)).Methods(http.MethodPost)
	admin.HandleFunc("/blog/{id}", handlers.UpdateBlogPostHandler(pool)).Methods(http.MethodPut)
	admin.HandleFunc("/blog/{id}", handlers.DeleteBlogPostHandler(pool)).Methods(http.MethodDelete)
	admin.HandleFunc("/gallery", handlers.CreateGalleryItemHandler(pool)).Methods(http.MethodPost)
	admin.HandleFunc("/gallery/{id}", handlers.UpdateGalleryItemHandler(pool)).Methods(http.MethodPut)
	admin.HandleFunc("/gallery/{id}", handlers.DeleteGalleryItemHandler(pool)).Methods(http.MethodDelete)
	admin.HandleFunc("/reviews", handlers.CreateReviewHandler(pool)).Methods(http.MethodPost)
	admin.HandleFunc("/reviews/{id}", handlers.UpdateReviewHandler(pool)).Methods(http.MethodPut)
	admin.HandleFunc("/reviews/{id}", handlers.DeleteReviewHandler(pool)).Methods(http.MethodDelete)
	admin.HandleFunc("/analytics", handlers.GetAnalyticsHandler(analytics)).Methods(http.MethodGet)

	cors := gorilla.CORS(
		gorilla.AllowedOrigins([]string{corsOrigin()}),
		gorilla.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilla.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return gorilla.LoggingHandler(os.Stdout, cors(r))
}

// Origin allowed to call the API, defaulting to the local frontend.
func corsOrigin() string {
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:3000"
}
