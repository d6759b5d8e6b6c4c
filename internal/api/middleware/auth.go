package middleware

import (
	"banco-api/internal/api/handler"
	"banco-api/internal/config"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	msgUnauthorized    = "Unauthorized"
	detailUnauthorized = "Token de acesso inválido ou ausente"
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

func AuthMiddleware(cfg config.AuthConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	logger = logger.With("component", "AuthMiddleware")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !validateJWT(r, cfg.JWTSecret, logger) {
				handler.WriteErrorEnvelope(w, http.StatusUnauthorized, msgUnauthorized, detailUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func validateJWT(r *http.Request, secret string, logger *slog.Logger) bool {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		logger.WarnContext(r.Context(), "Missing Authorization header")
		return false
	}

	scheme, tokenString, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
		logger.WarnContext(r.Context(), "Invalid Authorization header format")
		return false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		logger.WarnContext(r.Context(), "Invalid token", "error", err)
		return false
	}

	logger.DebugContext(r.Context(), "Authenticated request")
	return true
}
