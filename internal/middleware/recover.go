package middleware

import (
	"net/http"
	"runtime/debug"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

// Recover convierte un panic en un 500 JSON y lo loguea con el stack.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
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

				log.Error("panic recovered", map[string]any{
					"panic":      rec,
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": GetRequestID(r.Context()),
					"stack":      string(debug.Stack()),
				})
				web.WriteErrorMessage(w, http.StatusInternalServerError, "Error interno del servidor.")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
