package middleware

import (
	"banco-api/internal/api/handler"
	"banco-api/internal/config"
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

const (
	msgTooManyRequests    = "Too Many Requests"
	detailTooManyRequests = "Limite de requisições excedido"
)

// Limiter decides whether one more request from key fits in its budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type RateLimiterMiddleware struct {
	limiter Limiter
	cfg     config.RateLimitConfig
	logger  *slog.Logger
}

func NewRateLimiterMiddleware(cfg config.RateLimitConfig, limiter Limiter, logger *slog.Logger) *RateLimiterMiddleware {
	if cfg.Enabled && limiter == nil {
		logger.Warn("Rate limiting enabled but no limiter provided; disabling.")
		cfg.Enabled = false
	}
	return &RateLimiterMiddleware{
		limiter: limiter,
		cfg:     cfg,
		logger:  logger.With("component", "RateLimiterMiddleware"),
	}
}

func (rl *RateLimiterMiddleware) IsEnabled() bool {
	return rl.cfg.Enabled && rl.limiter != nil
}

func extractIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xRealIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(xRealIP) != nil {
		return xRealIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (rl *RateLimiterMiddleware) Middleware(next http.Handler) http.Handler {
	if !rl.IsEnabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := extractIP(r)

		allowed, err := rl.limiter.Allow(r.Context(), ip)
		if err != nil {
			// Fail open on limiter errors.
			rl.logger.ErrorContext(r.Context(), "Rate limiter check failed", "error", err, "ip", ip)
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			rl.logger.WarnContext(r.Context(), "Rate limit exceeded", "ip", ip)
			handler.WriteErrorEnvelope(w, http.StatusTooManyRequests, msgTooManyRequests, detailTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
