package middlewares

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// context key type
type ContextKey string

// JWT claims stored in the context
const UserClaimsKey ContextKey = "userClaims"

// RequireAuth validates the bearer token, rejects blacklisted tokens
// and adds the claims to the request context.
func RequireAuth(pool *pgxpool.Pool, jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := ExtractToken(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			// logged-out tokens sit in the blacklist until they expire
			var blacklisted bool
			query := `SELECT EXISTS (SELECT 1 FROM token_blacklist WHERE token = $1)`
			if err := pool.QueryRow(r.Context(), query, tokenString).Scan(&blacklisted); err != nil || blacklisted {
				http.Error(w, "Token is invalid", http.StatusUnauthorized)
				return
			}

			claims, err := GetValidatedClaims(tokenString, jwtSecret)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose token does not carry the admin role.
// Must run after RequireAuth.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := GetClaimsFromContext(r.Context())
			if err != nil {
				http.Error(w, "no valid claims", http.StatusUnauthorized)
				return
			}
			role, ok := claims["role"].(string)
			if !ok || role != "admin" {
				http.Error(w, "insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Extract the JWT token from the Authorization header.
func ExtractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", fmt.Errorf("malformed Authorization header")
	}

	return tokenString, nil
}

// Parse and validate the JWT token using the provided secret.
func GetValidatedClaims(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// Retrieve JWT claims from the request context.
func GetClaimsFromContext(ctx context.Context) (jwt.MapClaims, error) {
	claims, ok := ctx.Value(UserClaimsKey).(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("no valid claims in context")
	}
	return claims, nil
}

// GenerateJWT creates an HS256 token with user claims.
func GenerateJWT(userID string, role string, secret string) (string, int64, error) {
	// token validity comes from the environment, defaulting to 24 hours
	validHours := 24
	if v := os.Getenv("TOKEN_VALID_HOURS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Invalid TOKEN_VALID_HOURS, defaulting to 24 hours: %v", err)
		} else {
			validHours = parsed
		}
	}

	expirationTime := time.Now().Add(time.Hour * time.Duration(validHours)).Unix()

	claims := jwt.MapClaims{
		"userID": userID,
		"role":   role,
		"exp":    expirationTime,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expirationTime, nil
}

// InitJWTSecret returns the configured secret or generates a random
// fallback. Tokens signed with a generated secret do not survive
// restarts.
func InitJWTSecret(configured string) string {
	if configured != "" {
		return configured
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("Failed to generate random JWT secret: %v", err)
	}

	log.Println(
		"WARNING: JWT_SECRET not set. Generating a random secret. Tokens will not be consistent across restarts.",
	)
	return base64.StdEncoding.EncodeToString(secret)
}
