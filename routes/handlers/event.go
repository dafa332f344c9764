package handlers

import (
	"encoding/json"
	"net/http"

	"dermalead-api/forms"
	"dermalead-api/models"
)

// EventRegisterHandler accepts an event ticket registration.
//
//	@Summary			Register for the event
//	@Description	Validate the registration, price the tickets and register with the payment provider.
//	@ID						api.registerEvent
//	@Tags					forms
//	@Accept				json
//	@Produce			json
//	@Param				body	body		models.EventFormRequest	true	"Event registration fields"
//	@Success			200	{object}	models.SubmitResponse	"Registration accepted"
//	@Failure			400	{object}	models.ErrorResponse	"Validation failed"
//	@Failure			409	{object}	models.ErrorResponse	"Submission already in flight"
//	@Failure			502	{object}	models.ErrorResponse	"Payment provider rejected the registration"
//	@Router				/event/register [post]
func EventRegisterHandler(coordinator *forms.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.EventFormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}

		res, err := coordinator.SubmitEvent(r.Context(), req)
		if err != nil {
			writeSubmitError(w, err, req.Lang)
			return
		}

		writeJSONResponse(w, http.StatusOK, res)
	}
}

// CheckPromoHandler reports whether a promo code is valid.
//
//	@Summary			Check a promo code
//	@Description	Case-sensitive match against the configured code.
//	@ID						api.checkPromo
//	@Tags					forms
//	@Accept				json
//	@Produce			json
//	@Param				body	body		models.PromoCheckRequest	true	"Promo code"
//	@Success			200	{object}	models.PromoCheckResponse	"Validity of the code"
//	@Router				/event/promo [post]
func CheckPromoHandler(coordinator *forms.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PromoCheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}

		writeJSONResponse(w, http.StatusOK, models.PromoCheckResponse{
			Valid: coordinator.CheckPromo(req.Code),
		})
	}
}
