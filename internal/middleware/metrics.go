package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name. Incremented by
// the cache client's hook so cache degradation is visible on the dashboard.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "finlit_redis_errors_total",
		Help: "Total number of Redis command errors",
	},
	[]string{"command"},
)

// QuizSubmissions counts graded quiz submissions by correct-answer count.
var QuizSubmissions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "finlit_quiz_submissions_total",
		Help: "Total number of graded quiz submissions",
	},
	[]string{"correct_count"},
)

// InitMetrics creates the Prometheus middleware for HTTP metrics.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the fiberprometheus request handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
