package observability

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "passeio_tutor"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "backend_requests_total", Help: "Calls made to the marketplace API"},
		[]string{"method", "endpoint", "status"},
	)
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Marketplace API latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	CircuitBreakerOpen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: namespace, Name: "circuit_breaker_open", Help: "1 while the named breaker is not closed"},
		[]string{"name"},
	)

	WalkerDetailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "walker_details_total", Help: "Walker detail lookups by result"},
		[]string{"status"},
	)
	WalkersRankedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "walkers_ranked_total", Help: "Walkers ranked, split by whether a distance was known"},
		[]string{"distance"},
	)
	ProposalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "proposals_total", Help: "Walk proposal submissions by outcome"},
		[]string{"outcome"},
	)
)

// ObserveBackendCall records one marketplace call. status is 0 when no
// response was received.
func ObserveBackendCall(method, endpoint string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	BackendRequestsTotal.WithLabelValues(method, endpoint, label).Inc()
	BackendRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// SetCircuitBreakerOpen flags a breaker as open or half-open
func SetCircuitBreakerOpen(name string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	CircuitBreakerOpen.WithLabelValues(name).Set(v)
}

// ObserveWalkerDetail counts a detail lookup outcome
func ObserveWalkerDetail(status string) {
	WalkerDetailsTotal.WithLabelValues(status).Inc()
}

// ObserveRankedWalkers counts walkers with and without a known distance
func ObserveRankedWalkers(known, unknown int) {
	WalkersRankedTotal.WithLabelValues("known").Add(float64(known))
	WalkersRankedTotal.WithLabelValues("unknown").Add(float64(unknown))
}

// ObserveProposal counts a submission outcome
func ObserveProposal(outcome string) {
	ProposalsTotal.WithLabelValues(outcome).Inc()
}

// EchoMiddleware records request counts and latency per route
func EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler exposes the default registry for scraping
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
