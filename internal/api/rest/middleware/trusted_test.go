package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/danilovkiri/dk_go_wishlist/internal/config"
)

func newMetricsRouter(subnet string) http.Handler {
	cfg := config.NewDefaultConfiguration()
	cfg.TrustedSubnet = subnet
	registry := prometheus.NewRegistry()
	promauto.With(registry).NewCounter(prometheus.CounterOpts{Name: "wishlist_test_total", Help: "test"}).Inc()

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(NewTrustedNet(cfg, logrus.New()).TrustedHandle)
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	})
	return router
}

func TestTrustedHandle(t *testing.T) {
	tests := []struct {
		name    string
		subnet  string
		remote  string
		headers map[string]string
		want    int
	}{
		{name: "peer inside", subnet: "10.0.0.0/8", remote: "10.1.2.3:5000", want: http.StatusOK},
		{name: "peer outside", subnet: "10.0.0.0/8", remote: "192.0.2.1:5000", want: http.StatusForbidden},
		{name: "real ip header", subnet: "127.135.1.0/24", remote: "192.0.2.1:5000", headers: map[string]string{"X-Real-IP": "127.135.1.1"}, want: http.StatusOK},
		{name: "first forwarded entry", subnet: "127.135.1.0/24", remote: "192.0.2.1:5000", headers: map[string]string{"X-Forwarded-For": "127.135.1.1, 192.0.2.9"}, want: http.StatusOK},
		{name: "later forwarded entry ignored", subnet: "127.135.1.0/24", remote: "192.0.2.1:5000", headers: map[string]string{"X-Forwarded-For": "192.0.2.9, 127.135.1.1"}, want: http.StatusForbidden},
		{name: "second subnet of a list", subnet: "10.0.0.0/8, ::1/128", remote: "[::1]:5000", want: http.StatusOK},
		{name: "broken entry skipped", subnet: "nonsense,10.0.0.0/8", remote: "10.0.0.7:5000", want: http.StatusOK},
		{name: "nothing trusted", subnet: "", remote: "127.0.0.1:5000", headers: map[string]string{"X-Real-IP": "127.0.0.1"}, want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			newMetricsRouter(tt.subnet).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Contains(t, w.Body.String(), "wishlist_test_total 1")
			}
		})
	}
}

func TestTrustedNet_ContainsMappedAddr(t *testing.T) {
	cfg := config.NewDefaultConfiguration()
	cfg.TrustedSubnet = "127.0.0.0/8"
	tn := NewTrustedNet(cfg, logrus.New())
	assert.True(t, tn.Contains(netip.MustParseAddr("::ffff:127.0.0.1")))
	assert.False(t, tn.Contains(netip.MustParseAddr("::1")))
}
