package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"dermalead-api/db"
	"dermalead-api/models"
)

// RecordPageViewHandler stores a page visit sent by the frontend
// tracking snippet. Referer and language come from the payload, the
// user agent and address from the request itself.
//
//	@Summary			Record a page view
//	@ID						api.recordPageView
//	@Tags					analytics
//	@Accept				json
//	@Produce			json
//	@Param				body	body		models.PageViewRequest	true	"Visited page"
//	@Success			201	{object}	models.SuccessResponse	"View recorded"
//	@Failure			400	{object}	models.ErrorResponse		"Bad Request"
//	@Router				/analytics/pageview [post]
func RecordPageViewHandler(store *db.AnalyticsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PageViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload.")
			return
		}
		if req.Path == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Path is required.")
			return
		}

		view := models.PageView{
			Path:      req.Path,
			Referer:   req.Referer,
			UserAgent: r.UserAgent(),
			IP:        clientIP(r),
			Language:  req.Language,
		}
		if err := store.RecordPageView(r.Context(), view); err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to record page view.", err)
			return
		}

		writeJSONResponse(w, http.StatusCreated, models.SuccessResponse{
			Message: "Page view recorded.",
		})
	}
}

// Resolve the reporting window from the query string. Named periods
// count back from now; explicit dates win over the period.
func reportWindow(r *http.Request) (time.Time, time.Time, string) {
	now := time.Now()
	period := r.URL.Query().Get("period")

	start := now.AddDate(0, 0, -30)
	switch period {
	case "7days":
		start = now.AddDate(0, 0, -7)
	case "30days", "":
		period = "30days"
	case "90days":
		start = now.AddDate(0, 0, -90)
	case "all":
		start = time.Time{}
	}
	end := now

	if s := r.URL.Query().Get("startDate"); s != "" {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			start = parsed
			period = "custom"
		}
	}
	if e := r.URL.Query().Get("endDate"); e != "" {
		if parsed, err := time.Parse("2006-01-02", e); err == nil {
			// include the whole end day
			end = parsed.AddDate(0, 0, 1)
			period = "custom"
		}
	}

	return start, end, period
}

// GetAnalyticsHandler builds the dashboard traffic and submissions
// report.
//
//	@Summary			Get the analytics report
//	@ID						api.getAnalytics
//	@Tags					analytics
//	@Produce			json
//	@Param				period		query		string	false	"7days, 30days, 90days or all"
//	@Param				startDate	query		string	false	"Custom window start (YYYY-MM-DD)"
//	@Param				endDate		query		string	false	"Custom window end (YYYY-MM-DD)"
//	@Success			200	{object}	models.AnalyticsReport	"The report"
//	@Failure			500	{object}	models.ErrorResponse		"Internal Server Error"
//	@Router				/admin/analytics [get]
func GetAnalyticsHandler(store *db.AnalyticsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end, period := reportWindow(r)

		report, err := store.BuildReport(r.Context(), start, end)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to build analytics report.", err)
			return
		}
		report.Period = period

		writeJSONResponse(w, http.StatusOK, report)
	}
}
