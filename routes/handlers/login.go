package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"dermalead-api/middlewares"
	"dermalead-api/models"
)

// LoginHandler authenticates a dashboard user and returns a JWT.
//
//	@Summary			Log into the admin dashboard
//	@Description	Authenticate with email and password, receive a bearer token.
//	@ID						api.login
//	@Tags					auth
//	@Accept				json
//	@Produce			json
//	@Param				body	body		models.LoginRequest		true	"Login credentials"
//	@Success			200	{object}	models.LoginResponse	"Token issued"
//	@Failure			401	{object}	models.ErrorResponse	"Unauthorized"
//	@Router				/login [post]
func LoginHandler(pool *pgxpool.Pool, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var loginReq models.LoginRequest

		// parse login request
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid request payload.")
			return
		}

		// query the database for user details
		var userID, name, hashedPassword, role string
		query := `
			SELECT id, name, password_hash, role
			FROM users
			WHERE email = $1
		`
		if err := pool.QueryRow(
			r.Context(), query, loginReq.Email,
		).Scan(&userID, &name, &hashedPassword, &role); err != nil {
			writeErrorResponse(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}

		// check if the password matches the hash
		if err := bcrypt.CompareHashAndPassword(
			[]byte(hashedPassword), []byte(loginReq.Password),
		); err != nil {
			writeErrorResponse(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}

		tokenString, expires, err := middlewares.GenerateJWT(userID, role, jwtSecret)
		if err != nil {
			handleError(w, http.StatusInternalServerError, "Failed to generate token.", err)
			return
		}

		// send the token back to client
		w.Header().Set("Authorization", "Bearer "+tokenString)
		writeJSONResponse(w, http.StatusOK, models.LoginResponse{
			Token:   tokenString,
			Expires: expires,
			Name:    name,
			Role:    role,
		})
	}
}
