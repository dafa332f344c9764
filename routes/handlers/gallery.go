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

// ListGalleryHandler lists the before/after image pairs in display
// order.
//
//	@Summary			List gallery items
//	@ID						api.listGallery
//	@Tags					gallery
//	@Produce			json
//	@Success			200	{array}		models.GalleryItem		"Gallery items"
//	@Failure			500	{object}	models.ErrorResponse	"Internal Server Error"
//	@Router				/gallery [get]
func ListGalleryHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := pool.Query(r.Context(), `
			SELECT id, before_image, after_image, ord, created_at
			FROM gallery_items
			ORDER BY ord ASC, created_at ASC
		`)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to fetch gallery.", err)
			return
		}
		defer rows.Close()

		items := []models.GalleryItem{}
		for rows.Next() {
			var item models.GalleryItem
			if err := rows.Scan(
				&item.ID, &item.BeforeImage, &item.AfterImage, &item.Order, &item.CreatedAt,
			); err != nil {
				handleError(w, http.StatusInternalServerError, "Failed to parse gallery.", err)
				return
			}
			items = append(items, item)
		}
		writeJSONResponse(w, http.StatusOK, items)
	}
}

// CreateGalleryItemHandler adds a before/after pair.
//
//	@Summary			Create a gallery item
//	@ID						api.createGalleryItem
//	@Tags					gallery
//	@Accept				json
//	@Produce			json
//	@Param				body	body		models.CreateGalleryItemRequest	true	"Item to create"
//	@Success			201	{object}	models.SuccessResponseCreate		"Item created"
//	@Failure			400	{object}	models.ErrorResponse						"Bad Request"
//	@Router				/admin/gallery [post]
func CreateGalleryItemHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateGalleryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}
		if req.BeforeImage == "" || req.AfterImage == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Both images are required.")
			return
		}

		id := uuid.New()
		query := `
			INSERT INTO gallery_items (id, before_image, after_image, ord)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := pool.Exec(
			r.Context(), query, id, req.BeforeImage, req.AfterImage, req.Order,
		); err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to create gallery item.", err)
			return
		}

		writeJSONResponse(w, http.StatusCreated, models.SuccessResponseCreate{
			Message: "Gallery item created successfully.",
			ID:      id.String(),
		})
	}
}

// UpdateGalleryItemHandler updates images or display order of an item.
//
//	@Summary			Update a gallery item
//	@ID						api.updateGalleryItem
//	@Tags					gallery
//	@Accept				json
//	@Produce			json
//	@Param				id		path		string													true	"Item ID"
//	@Param				body	body		models.UpdateGalleryItemRequest	true	"Fields to update"
//	@Success			200	{object}	models.SuccessResponse	"Item updated"
//	@Failure			404	{object}	models.ErrorResponse		"Not Found"
//	@Router				/admin/gallery/{id} [put]
func UpdateGalleryItemHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := mux.Vars(r)["id"]
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, "Item ID not provided.")
			return
		}

		var req models.UpdateGalleryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}

		var updateQueries []string
		var updateArgs []interface{}
		argIndex := 1

		if req.BeforeImage != nil {
			updateQueries = append(updateQueries, fmt.Sprintf("before_image = $%d", argIndex))
			updateArgs = append(updateArgs, *req.BeforeImage)
			argIndex++
		}
		if req.AfterImage != nil {
			updateQueries = append(updateQueries, fmt.Sprintf("after_image = $%d", argIndex))
			updateArgs = append(updateArgs, *req.AfterImage)
			argIndex++
		}
		if req.Order != nil {
			updateQueries = append(updateQueries, fmt.Sprintf("ord = $%d", argIndex))
			updateArgs = append(updateArgs, *req.Order)
			argIndex++
		}

		if len(updateQueries) == 0 {
			writeErrorResponse(w, http.StatusUnprocessableEntity, "Nothing to update.")
			return
		}

		updateArgs = append(updateArgs, itemID)
		updateQuery := fmt.Sprintf(
			"UPDATE gallery_items SET %s WHERE id = $%d",
			strings.Join(updateQueries, ", "),
			argIndex,
		)

		tag, err := pool.Exec(r.Context(), updateQuery, updateArgs...)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to update gallery item.", err)
			return
		}
		if tag.RowsAffected() == 0 {
			writeErrorResponse(w, http.StatusNotFound, "Gallery item not found.")
			return
		}

		writeJSONResponse(w, http.StatusOK, models.SuccessResponse{
			Message: "Gallery item updated successfully.",
		})
	}
}

// DeleteGalleryItemHandler removes an item by ID.
//
//	@Summary			Delete a gallery item
//	@ID						api.deleteGalleryItem
//	@Tags					gallery
//	@Produce			json
//	@Param				id	path		string	true	"Item ID"
//	@Success			200	{object}	models.SuccessResponse	"Item deleted"
//	@Failure			404	{object}	models.ErrorResponse		"Not Found"
//	@Router				/admin/gallery/{id} [delete]
func DeleteGalleryItemHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := mux.Vars(r)["id"]
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, "Item ID not provided.")
			return
		}

		tag, err := pool.Exec(r.Context(), `DELETE FROM gallery_items WHERE id = $1`, itemID)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to delete gallery item.", err)
			return
		}
		if tag.RowsAffected() == 0 {
			writeErrorResponse(w, http.StatusNotFound, "Gallery item not found.")
			return
		}

		writeJSONResponse(w, http.StatusOK, models.SuccessResponse{
			Message: "Gallery item deleted successfully.",
		})
	}
}
