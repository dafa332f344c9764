package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dermalead-api/models"
)

const blogColumns = `
	id, title, slug, content, excerpt, featured_image,
	author, status, tags, views, published_at, created_at, updated_at
`

func scanBlogPost(row pgx.Row) (models.BlogPost, error) {
	var post models.BlogPost
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Excerpt,
		&post.FeaturedImage,
		&post.Author,
		&post.Status,
		&post.Tags,
		&post.Views,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	return post, err
}

// ListBlogPostsHandler lists blog posts. Visitors only see published
// posts; authenticated admins get drafts as well.
//
//	@Summary			List blog posts
//	@ID						api.listBlogPosts
//	@Tags					blog
//	@Produce			json
//	@Success			200	{array}		models.BlogPost				"Blog posts"
//	@Failure			500	{object}	models.ErrorResponse	"Internal Server Error"
//	@Router				/blog [get]
func ListBlogPostsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := `SELECT ` + blogColumns + ` FROM blog_posts`
		if !isAdmin(r) {
			query += ` WHERE status = 'published'`
		}
		query += ` ORDER BY published_at DESC NULLS LAST, created_at DESC`

		rows, err := pool.Query(r.Context(), query)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to fetch blog posts.", err)
			return
		}
		defer rows.Close()

		posts := []models.BlogPost{}
		for rows.Next() {
			post, err := scanBlogPost(rows)
			if err != nil {
				handleError(w, http.StatusInternalServerError, "Failed to parse blog posts.", err)
				return
			}
			posts = append(posts, post)
		}
		writeJSONResponse(w, http.StatusOK, posts)
	}
}

// GetBlogPostHandler returns a published post by slug in any locale and
// bumps its view counter.
//
//	@Summary			Get a blog post by slug
//	@ID						api.getBlogPost
//	@Tags					blog
//	@Produce			json
//	@Param				slug	path		string	true	"Post slug in any locale"
//	@Success			200	{object}	models.BlogPost				"The blog post"
//	@Failure			404	{object}	models.ErrorResponse	"Not Found"
//	@Router				/blog/{slug} [get]
func GetBlogPostHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug, ok := mux.Vars(r)["slug"]
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, "Post slug not provided.")
			return
		}

		// the slug differs per locale, match any of them
		query := `
			UPDATE blog_posts
			SET views = views + 1
			WHERE status = 'published'
				AND (slug->>'en' = $1 OR slug->>'he' = $1 OR slug->>'ru' = $1)
			RETURNING ` + blogColumns
		post, err := scanBlogPost(pool.QueryRow(r.Context(), query, slug))
		if err != nil {
			if err == pgx.ErrNoRows {
				writeErrorResponse(w, http.StatusNotFound, "Blog post not found.")
				return
			}
			handleError(w, http.StatusInternalServerError, "Failed to fetch blog post.", err)
			return
		}

		writeJSONResponse(w, http.StatusOK, post)
	}
}

// CreateBlogPostHandler creates a new post.
//
//	@Summary			Create a blog post
//	@ID						api.createBlogPost
//	@Tags					blog
//	@Accept				json
//	@Produce			json
//	@Param				body	body		models.CreateBlogPostRequest	true	"Post to create"
//	@Success			201	{object}	models.SuccessResponseCreate	"Post created"
//	@Failure			400	{object}	models.ErrorResponse					"Bad Request"
//	@Router				/admin/blog [post]
func CreateBlogPostHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateBlogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}

		if req.Title.EN == "" || req.Slug.EN == "" || req.Author == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Title, slug and author are required.")
			return
		}

		status := req.Status
		if status == "" {
			status = models.BlogStatusDraft
		}
		if status != models.BlogStatusDraft && status != models.BlogStatusPublished {
			writeErrorResponse(w, http.StatusBadRequest, "Status must be draft or published.")
			return
		}

		titleDoc, _ := json.Marshal(req.Title)
		slugDoc, _ := json.Marshal(req.Slug)
		contentDoc, _ := json.Marshal(req.Content)
		excerptDoc, _ := json.Marshal(req.Excerpt)

		id := uuid.New()
		query := `
			INSERT INTO blog_posts
				(id, title, slug, content, excerpt, featured_image, author, status, tags, published_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
				CASE WHEN $8 = 'published' THEN NOW() ELSE NULL END)
		`
		if _, err := pool.Exec(
			r.Context(), query,
			id, titleDoc, slugDoc, contentDoc, excerptDoc,
			req.FeaturedImage, req.Author, status, req.Tags,
		); err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to create blog post.", err)
			return
		}

		writeJSONResponse(w, http.StatusCreated, models.SuccessResponseCreate{
			Message: "Blog post created successfully.",
			ID:      id.String(),
		})
	}
}

// UpdateBlogPostHandler updates a post by ID. Only the provided fields
// change; publishing a draft sets its publication date.
//
//	@Summary			Update a blog post
//	@ID						api.updateBlogPost
//	@Tags					blog
//	@Accept				json
//	@Produce			json
//	@Param				id		path		string												true	"Post ID"
//	@Param				body	body		models.UpdateBlogPostRequest	true	"Fields to update"
//	@Success			200	{object}	models.SuccessResponse	"Post updated"
//	@Failure			404	{object}	models.ErrorResponse		"Not Found"
//	@Router				/admin/blog/{id} [put]
func UpdateBlogPostHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := mux.Vars(r)["id"]
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, "Post ID not provided.")
			return
		}

		var req models.UpdateBlogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}

		var updateQueries []string
		var updateArgs []interface{}
		argIndex := 1

		appendDoc := func(column string, value interface{}) {
			doc, _ := json.Marshal(value)
			updateQueries = append(updateQueries, fmt.Sprintf("%s = $%d", column, argIndex))
			updateArgs = append(updateArgs, doc)
			argIndex++
		}

		if req.Title != nil {
			appendDoc("title", *req.Title)
		}
		if req.Slug != nil {
			appendDoc("slug", *req.Slug)
		}
		if req.Content != nil {
			appendDoc("content", *req.Content)
		}
		if req.Excerpt != nil {
			appendDoc("excerpt", *req.Excerpt)
		}
		if req.FeaturedImage != nil {
			updateQueries = append(updateQueries, fmt.Sprintf("featured_image = $%d", argIndex))
			updateArgs = append(updateArgs, *req.FeaturedImage)
			argIndex++
		}
		if req.Tags != nil {
			updateQueries = append(updateQueries, fmt.Sprintf("tags = $%d", argIndex))
			updateArgs = append(updateArgs, *req.Tags)
			argIndex++
		}
		if req.Status != nil {
			if *req.Status != models.BlogStatusDraft && *req.Status != models.BlogStatusPublished {
				writeErrorResponse(w, http.StatusBadRequest, "Status must be draft or published.")
				return
			}
			updateQueries = append(updateQueries, fmt.Sprintf("status = $%d", argIndex))
			updateArgs = append(updateArgs, *req.Status)
			argIndex++
			if *req.Status == models.BlogStatusPublished {
				updateQueries = append(updateQueries, "published_at = COALESCE(published_at, NOW())")
			}
		}

		if len(updateQueries) == 0 {
			writeErrorResponse(w, http.StatusUnprocessableEntity, "Nothing to update.")
			return
		}
		updateQueries = append(updateQueries, "updated_at = NOW()")

		updateArgs = append(updateArgs, postID)
		updateQuery := fmt.Sprintf(
			"UPDATE blog_posts SET %s WHERE id = $%d",
			strings.Join(updateQueries, ", "),
			argIndex,
		)

		tag, err := pool.Exec(r.Context(), updateQuery, updateArgs...)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to update blog post.", err)
			return
		}
		if tag.RowsAffected() == 0 {
			writeErrorResponse(w, http.StatusNotFound, "Blog post not found.")
			return
		}

		writeJSONResponse(w, http.StatusOK, models.SuccessResponse{
			Message: "Blog post updated successfully.",
		})
	}
}

// DeleteBlogPostHandler deletes a post by ID.
//
//	@Summary			Delete a blog post
//	@ID						api.deleteBlogPost
//	@Tags					blog
//	@Produce			json
//	@Param				id	path		string	true	"Post ID"
//	@Success			200	{object}	models.SuccessResponse	"Post deleted"
//	@Failure			404	{object}	models.ErrorResponse		"Not Found"
//	@Router				/admin/blog/{id} [delete]
func DeleteBlogPostHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := mux.Vars(r)["id"]
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, "Post ID not provided.")
			return
		}

		tag, err := pool.Exec(r.Context(), `DELETE FROM blog_posts WHERE id = $1`, postID)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to delete blog post.", err)
			return
		}
		if tag.RowsAffected() == 0 {
			writeErrorResponse(w, http.StatusNotFound, "Blog post not found.")
			return
		}

		writeJSONResponse(w, http.StatusOK, models.SuccessResponse{
			Message: "Blog post deleted successfully.",
		})
	}
}
