package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dermalead-api/models"
)

// GetContentHandler lists site content fragments, optionally filtered by
// section. Public; the frontend fetches whole sections at page load.
//
//	@Summary			Get site content
//	@Description	Retrieve editable content fragments with all translations.
//	@ID						api.getContent
//	@Tags					content
//	@Produce			json
//	@Param				section	query		string	false	"Only return fragments from this section"
//	@Success			200	{array}		models.SiteContent		"Content fragments"
//	@Failure			500	{object}	models.ErrorResponse	"Internal Server Error"
//	@Router				/content [get]
func GetContentHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := `
			SELECT id, key, section, content, is_html, updated_at
			FROM site_content
		`
		args := []interface{}{}
		if section := r.URL.Query().Get("section"); section != "" {
			query += ` WHERE section = $1`
			args = append(args, section)
		}
		query += ` ORDER BY key ASC`

		rows, err := pool.Query(r.Context(), query, args...)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to fetch site content.", err)
			return
		}
		defer rows.Close()

		items := []models.SiteContent{}
		for rows.Next() {
			var item models.SiteContent
			if err := rows.Scan(
				&item.ID,
				&item.Key,
				&item.Section,
				&item.Content,
				&item.IsHTML,
				&item.UpdatedAt,
			); err != nil {
				handleError(w, http.StatusInternalServerError, "Failed to parse site content.", err)
				return
			}
			items = append(items, item)
		}
		writeJSONResponse(w, http.StatusOK, items)
	}
}

// UpsertContentHandler creates or replaces a content fragment by key.
//
//	@Summary			Create or update a content fragment
//	@ID						api.upsertContent
//	@Tags					content
//	@Accept				json
//	@Produce			json
//	@Param				body	body		models.SiteContentRequest	true	"Fragment to store"
//	@Success			200	{object}	models.SuccessResponse	"Fragment stored"
//	@Failure			400	{object}	models.ErrorResponse		"Bad Request"
//	@Router				/admin/content [post]
func UpsertContentHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SiteContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}

		if req.Key == "" || req.Section == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Key and section are required.")
			return
		}

		contentDoc, err := json.Marshal(req.Content)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to encode content.", err)
			return
		}

		query := `
			INSERT INTO site_content (id, key, section, content, is_html, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			ON CONFLICT (key) DO UPDATE
			SET section = $3, content = $4, is_html = $5, updated_at = NOW()
		`
		if _, err := pool.Exec(
			r.Context(), query,
			uuid.New(), req.Key, req.Section, contentDoc, req.IsHTML,
		); err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to store content.", err)
			return
		}

		writeJSONResponse(w, http.StatusOK, models.SuccessResponse{
			Message: "Content stored successfully.",
		})
	}
}

// DeleteContentHandler removes a content fragment by key.
//
//	@Summary			Delete a content fragment
//	@ID						api.deleteContent
//	@Tags					content
//	@Produce			json
//	@Param				key	path		string	true	"Fragment key"
//	@Success			200	{object}	models.SuccessResponse	"Fragment deleted"
//	@Failure			404	{object}	models.ErrorResponse		"Not Found"
//	@Router				/admin/content/{key} [delete]
func DeleteContentHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := mux.Vars(r)["key"]
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, "Content key not provided.")
			return
		}

		tag, err := pool.Exec(r.Context(), `DELETE FROM site_content WHERE key = $1`, key)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to delete content.", err)
			return
		}
		if tag.RowsAffected() == 0 {
			writeErrorResponse(w, http.StatusNotFound, "Content not found.")
			return
		}

		writeJSONResponse(w, http.StatusOK, models.SuccessResponse{
			Message: "Content deleted successfully.",
		})
	}
}

// GetSeoHandler returns SEO metadata, either for one page or for all of
// them.
//
//	@Summary			Get SEO settings
//	@ID						api.getSeo
//	@Tags					content
//	@Produce			json
//	@Param				page	query		string	false	"Only return settings for this page"
//	@Success			200	{array}		models.SeoSettings		"SEO settings"
//	@Failure			404	{object}	models.ErrorResponse	"Not Found"
//	@Router				/seo [get]
func GetSeoHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if page := r.URL.Query().Get("page"); page != "" {
			var s models.SeoSettings
			query := `
				SELECT id, page, title, description, keywords, og_image, updated_at
				FROM seo_settings
				WHERE page = $1
			`
			err := pool.QueryRow(r.Context(), query, page).Scan(
				&s.ID, &s.Page, &s.Title, &s.Description, &s.Keywords, &s.OGImage, &s.UpdatedAt,
			)
			if err != nil {
				if err == pgx.ErrNoRows {
					writeErrorResponse(w, http.StatusNotFound, "No SEO settings for this page.")
					return
				}
				handleError(w, http.StatusInternalServerError, "Failed to fetch SEO settings.", err)
				return
			}
			writeJSONResponse(w, http.StatusOK, s)
			return
		}

		rows, err := pool.Query(r.Context(), `
			SELECT id, page, title, description, keywords, og_image, updated_at
			FROM seo_settings
			ORDER BY page ASC
		`)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to fetch SEO settings.", err)
			return
		}
		defer rows.Close()

		settings := []models.SeoSettings{}
		for rows.Next() {
			var s models.SeoSettings
			if err := rows.Scan(
				&s.ID, &s.Page, &s.Title, &s.Description, &s.Keywords, &s.OGImage, &s.UpdatedAt,
			); err != nil {
				handleError(w, http.StatusInternalServerError, "Failed to parse SEO settings.", err)
				return
			}
			settings = append(settings, s)
		}
		writeJSONResponse(w, http.StatusOK, settings)
	}
}

// UpsertSeoHandler creates or replaces the SEO settings of a page.
//
//	@Summary			Create or update SEO settings
//	@ID						api.upsertSeo
//	@Tags					content
//	@Accept				json
//	@Produce			json
//	@Param				body	body		models.SeoSettingsRequest	true	"Settings to store"
//	@Success			200	{object}	models.SuccessResponse	"Settings stored"
//	@Failure			400	{object}	models.ErrorResponse		"Bad Request"
//	@Router				/admin/seo [post]
func UpsertSeoHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SeoSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}
		if req.Page == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Page is required.")
			return
		}

		titleDoc, _ := json.Marshal(req.Title)
		descDoc, _ := json.Marshal(req.Description)
		keywordsDoc, _ := json.Marshal(req.Keywords)

		query := `
			INSERT INTO seo_settings (id, page, title, description, keywords, og_image, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
			ON CONFLICT (page) DO UPDATE
			SET title = $3, description = $4, keywords = $5, og_image = $6, updated_at = NOW()
		`
		if _, err := pool.Exec(
			r.Context(), query,
			uuid.New(), req.Page, titleDoc, descDoc, keywordsDoc, req.OGImage,
		); err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to store SEO settings.", err)
			return
		}

		writeJSONResponse(w, http.StatusOK, models.SuccessResponse{
			Message: "SEO settings stored successfully.",
		})
	}
}
