package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Счетчик обработанных HTTP-запросов по методу, маршруту и статусу
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Гистограмма времени обработки запросов
	RequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func Init() {
	// Регистрируем метрики
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDuration)
}

// ObserveRequest фиксирует один обработанный HTTP-запрос.
func ObserveRequest(method, path string, status int, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	RequestDuration.Observe(duration.Seconds())
}

// Handler возвращает HTTP-обработчик для отдачи метрик Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
