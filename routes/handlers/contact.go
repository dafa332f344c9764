package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"dermalead-api/forms"
	"dermalead-api/i18n"
	"dermalead-api/models"
)

// ContactFormHandler accepts a contact form submission and hands it to
// the coordinator.
//
//	@Summary			Submit the contact form
//	@Description	Validate the lead and deliver it over email and the CRM.
//	@ID						api.submitContact
//	@Tags					forms
//	@Accept				json
//	@Produce			json
//	@Param				body	body		models.ContactFormRequest	true	"Contact form fields"
//	@Success			200	{object}	models.SubmitResponse	"Submission accepted"
//	@Failure			400	{object}	models.ErrorResponse	"Validation failed"
//	@Failure			409	{object}	models.ErrorResponse	"Submission already in flight"
//	@Failure			502	{object}	models.ErrorResponse	"All delivery channels failed"
//	@Router				/contact [post]
func ContactFormHandler(coordinator *forms.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ContactFormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}

		res, err := coordinator.SubmitContact(r.Context(), req)
		if err != nil {
			writeSubmitError(w, err, req.Lang)
			return
		}

		writeJSONResponse(w, http.StatusOK, res)
	}
}

// Map coordinator errors onto HTTP statuses. Validation problems are the
// client's fault, duplicates are a conflict and failed deliveries are an
// upstream problem.
func writeSubmitError(w http.ResponseWriter, err error, lang string) {
	var validationErr *forms.ValidationError
	var deliveryErr *forms.DeliveryError

	switch {
	case errors.As(err, &validationErr):
		writeErrorResponse(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, forms.ErrInFlight):
		t := i18n.Lookup(i18n.NormalizeLocale(lang))
		writeErrorResponse(w, http.StatusConflict, t("forms.duplicate"))
	case errors.As(err, &deliveryErr):
		writeErrorResponse(w, http.StatusBadGateway, deliveryErr.Message)
	default:
		handleError(w, http.StatusInternalServerError, "Failed to process submission.", err)
	}
}
