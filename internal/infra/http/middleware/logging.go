package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger registra cada requisição com método, rota, status e duração.
func Logger(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			entry := logger.WithFields(logrus.Fields{
				"request_id": GetRequestID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rw.statusCode,
				"duration":   time.Since(start).String(),
			})
			switch {
			case rw.statusCode >= 500:
				entry.Error("🔥 requisição falhou")
			case rw.statusCode >= 400:
				entry.Warn("⚠️ requisição rejeitada")
			default:
				entry.Info("requisição atendida")
			}
		})
	}
}
