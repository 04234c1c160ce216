package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

// Instrumenter sets object structure.
type Instrumenter struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	log      *logrus.Logger
}

// NewInstrumenter registers request metrics in reg.
func NewInstrumenter(reg prometheus.Registerer, log *logrus.Logger) *Instrumenter {
	factory := promauto.With(reg)
	return &Instrumenter{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wishlist",
			Name:      "http_requests_total",
			Help:      "Number of handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wishlist",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		log: log,
	}
}

// InstrumentHandle logs every request and records its metrics under the matched route pattern.
func (in *Instrumenter) InstrumentHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		in.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		in.duration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
		in.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   status,
			"bytes":    ww.BytesWritten(),
			"duration": elapsed,
		}).Info("request")
	})
}
