package middleware

import (
	"banco-api/internal/api/handler"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recoverer turns a panic into the 500 envelope. http.ErrAbortHandler is
// re-raised so net/http can abort the connection.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "Recovered from panic",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				handler.WriteErrorEnvelope(w, http.StatusInternalServerError, handler.MsgInternal, handler.DetailInternal)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
