package handlers

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"dermalead-api/middlewares"
)

// LogoutHandler invalidates the current token.
//
//	@Summary			Log out of the admin dashboard
//	@Description	Blacklist the presented token until it expires.
//	@ID						api.logout
//	@Tags					auth
//	@Produce			json
//	@Success			200	{object}	models.SuccessResponse	"Logged out"
//	@Failure			401	{object}	models.ErrorResponse		"Unauthorized"
//	@Router				/logout [post]
func LogoutHandler(pool *pgxpool.Pool, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := middlewares.ExtractToken(r)
		if err != nil {
			handleError(w, http.StatusUnauthorized, "You are not logged in.", nil)
			return
		}

		claims, err := middlewares.GetValidatedClaims(tokenString, jwtSecret)
		if err != nil {
			handleError(w, http.StatusUnauthorized, "Failed to validate token.", err)
			return
		}

		// get the expiration time from the claims
		expirationTime, ok := claims["exp"].(float64)
		if !ok {
			handleError(w, http.StatusUnauthorized, "Invalid token expiration.", nil)
			return
		}

		// insert the token into the blacklist
		query := `INSERT INTO token_blacklist (token, expires_at) VALUES ($1, $2)
			ON CONFLICT (token) DO NOTHING`
		if _, err := pool.Exec(
			r.Context(),
			query,
			tokenString,
			time.Unix(int64(expirationTime), 0),
		); err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to invalidate token.", err)
			return
		}

		writeJSONResponse(w, http.StatusOK, map[string]string{
			"message": "Logged out successfully",
		})
	}
}
