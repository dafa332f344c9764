package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"

	"dermalead-api/models"
)

// ListReviewsHandler lists customer reviews, newest first.
//
//	@Summary			List reviews
//	@ID						api.listReviews
//	@Tags					reviews
//	@Produce			json
//	@Success			200	{array}		models.Review					"Reviews"
//	@Failure			500	{object}	models.ErrorResponse	"Internal Server Error"
//	@Router				/reviews [get]
func ListReviewsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := pool.Query(r.Context(), `
			SELECT id, name, rating, text, created_at
			FROM reviews
			ORDER BY created_at DESC
		`)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to fetch reviews.", err)
			return
		}
		defer rows.Close()

		reviews := []models.Review{}
		for rows.Next() {
			var review models.Review
			if err := rows.Scan(
				&review.ID, &review.Name, &review.Rating, &review.Text, &review.CreatedAt,
			); err != nil {
				handleError(w, http.StatusInternalServerError, "Failed to parse reviews.", err)
				return
			}
			reviews = append(reviews, review)
		}
		writeJSONResponse(w, http.StatusOK, reviews)
	}
}

// CreateReviewHandler adds a customer review.
//
//	@Summary			Create a review
//	@ID						api.createReview
//	@Tags					reviews
//	@Accept				json
//	@Produce			json
//	@Param				body	body		models.CreateReviewRequest		true	"Review to create"
//	@Success			201	{object}	models.SuccessResponseCreate	"Review created"
//	@Failure			400	{object}	models.ErrorResponse					"Bad Request"
//	@Router				/admin/reviews [post]
func CreateReviewHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}
		if req.Name == "" || req.Text == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Name and text are required.")
			return
		}
		if req.Rating < 1 || req.Rating > 5 {
			writeErrorResponse(w, http.StatusBadRequest, "Rating must be between 1 and 5.")
			return
		}

		id := uuid.New()
		query := `INSERT INTO reviews (id, name, rating, text) VALUES ($1, $2, $3, $4)`
		if _, err := pool.Exec(
			r.Context(), query, id, req.Name, req.Rating, req.Text,
		); err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to create review.", err)
			return
		}

		writeJSONResponse(w, http.StatusCreated, models.SuccessResponseCreate{
			Message: "Review created successfully.",
			ID:      id.String(),
		})
	}
}

// UpdateReviewHandler updates a review by ID.
//
//	@Summary			Update a review
//	@ID						api.updateReview
//	@Tags					reviews
//	@Accept				json
//	@Produce			json
//	@Param				id		path		string										true	"Review ID"
//	@Param				body	body		models.UpdateReviewRequest	true	"Fields to update"
//	@Success			200	{object}	models.SuccessResponse	"Review updated"
//	@Failure			404	{object}	models.ErrorResponse		"Not Found"
//	@Router				/admin/reviews/{id} [put]
func UpdateReviewHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, ok := mux.Vars(r)["id"]
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, "Review ID not provided.")
			return
		}

		var req models.UpdateReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}

		var updateQueries []string
		var updateArgs []interface{}
		argIndex := 1

		if req.Name != nil {
			updateQueries = append(updateQueries, fmt.Sprintf("name = $%d", argIndex))
			updateArgs = append(updateArgs, *req.Name)
			argIndex++
		}
		if req.Rating != nil {
			if *req.Rating < 1 || *req.Rating > 5 {
				writeErrorResponse(w, http.StatusBadRequest, "Rating must be between 1 and 5.")
				return
			}
			updateQueries = append(updateQueries, fmt.Sprintf("rating = $%d", argIndex))
			updateArgs = append(updateArgs, *req.Rating)
			argIndex++
		}
		if req.Text != nil {
			updateQueries = append(updateQueries, fmt.Sprintf("text = $%d", argIndex))
			updateArgs = append(updateArgs, *req.Text)
			argIndex++
		}

		if len(updateQueries) == 0 {
			writeErrorResponse(w, http.StatusUnprocessableEntity, "Nothing to update.")
			return
		}

		updateArgs = append(updateArgs, reviewID)
		updateQuery := fmt.Sprintf(
			"UPDATE reviews SET %s WHERE id = $%d",
			strings.Join(updateQueries, ", "),
			argIndex,
		)

		tag, err := pool.Exec(r.Context(), updateQuery, updateArgs...)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to update review.", err)
			return
		}
		if tag.RowsAffected() == 0 {
			writeErrorResponse(w, http.StatusNotFound, "Review not found.")
			return
		}

		writeJSONResponse(w, http.StatusOK, models.SuccessResponse{
			Message: "Review updated successfully.",
		})
	}
}

// DeleteReviewHandler removes a review by ID.
//
//	@Summary			Delete a review
//	@ID						api.deleteReview
//	@Tags					reviews
//	@Produce			json
//	@Param				id	path		string	true	"Review ID"
//	@Success			200	{object}	models.SuccessResponse	"Review deleted"
//	@Failure			404	{object}	models.ErrorResponse		"Not Found"
//	@Router				/admin/reviews/{id} [delete]
func DeleteReviewHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, ok := mux.Vars(r)["id"]
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, "Review ID not provided.")
			return
		}

		tag, err := pool.Exec(r.Context(), `DELETE FROM reviews WHERE id = $1`, reviewID)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to delete review.", err)
			return
		}
		if tag.RowsAffected() == 0 {
			writeErrorResponse(w, http.StatusNotFound, "Review not found.")
			return
		}

		writeJSONResponse(w, http.StatusOK, models.SuccessResponse{
			Message: "Review deleted successfully.",
		})
	}
}
