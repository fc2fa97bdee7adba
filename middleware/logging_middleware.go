package middleware

import (
	"log"
	"net/http"
	"time"

	"notes_api_go/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// statusWriter запоминает статус ответа, записанный обработчиком.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// LoggingMiddleware логирует каждый входящий запрос с уникальным ID
// и передает итог обработки в метрики.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		duration := time.Since(start)

		// Для метрик используем шаблон маршрута, чтобы не плодить лейблы на каждый ID
		routePath := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				routePath = tpl
			}
		}

		log.Printf("[%s] %s %s -> %d (%s)", requestID, r.Method, r.URL.Path, sw.status, duration)
		metrics.ObserveRequest(r.Method, routePath, sw.status, duration)
	})
}
