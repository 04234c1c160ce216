package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_wishlist/internal/i18n"
)

func newLocaleServer(t *testing.T) (*httptest.Server, *i18n.Catalog) {
	catalog, err := i18n.NewCatalog("en")
	require.NoError(t, err)
	gate := NewLocaleGate(catalog, logrus.New())
	router := chi.NewRouter()
	router.Route("/{locale}", func(r chi.Router) {
		r.Use(gate.LocaleHandle)
		r.Get("/wishes", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(LocaleFromContext(r.Context())))
		})
	})
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts, catalog
}

func TestLocaleHandleSupported(t *testing.T) {
	ts, catalog := newLocaleServer(t)
	for i := 0; i < 2; i++ {
		res, err := resty.New().R().Get(ts.URL + "/fr/wishes")
		require.NoError(t, err)
		assert.Equal(t, 200, res.StatusCode())
		assert.Equal(t, "fr", res.String())
		require.NotEmpty(t, res.Cookies())
		assert.Equal(t, LocaleCookie, res.Cookies()[0].Name)
		assert.Equal(t, "fr", res.Cookies()[0].Value)
	}
	assert.Equal(t, 1, catalog.Loads())
}

func TestLocaleHandleUnsupported(t *testing.T) {
	ts, _ := newLocaleServer(t)
	client := resty.New().SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	res, err := client.R().Get(ts.URL + "/xx/wishes?a=b")
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, res.StatusCode())
	assert.Equal(t, "/en/wishes?a=b", res.Header().Get("Location"))
}

func TestPreferredLocale(t *testing.T) {
	catalog, err := i18n.NewCatalog("en")
	require.NoError(t, err)
	gate := NewLocaleGate(catalog, logrus.New())

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "en", gate.PreferredLocale(r))
	r.AddCookie(&http.Cookie{Name: LocaleCookie, Value: "pseudo"})
	assert.Equal(t, "pseudo", gate.PreferredLocale(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: LocaleCookie, Value: "klingon"})
	assert.Equal(t, "en", gate.PreferredLocale(r))
}

func TestCORSHandle(t *testing.T) {
	router := chi.NewRouter()
	router.Use(CORSHandle)
	router.HandleFunc("/fn", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("called"))
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	res, err := resty.New().R().Options(ts.URL + "/fn")
	require.NoError(t, err)
	assert.Equal(t, "ok", res.String())
	assert.Equal(t, "*", res.Header().Get("Access-Control-Allow-Origin"))

	res, err = resty.New().R().Post(ts.URL + "/fn")
	require.NoError(t, err)
	assert.Equal(t, "called", res.String())
	assert.Equal(t, "*", res.Header().Get("Access-Control-Allow-Origin"))
}

func TestInstrumentHandle(t *testing.T) {
	reg := prometheus.NewRegistry()
	in := NewInstrumenter(reg, logrus.New())
	router := chi.NewRouter()
	router.Use(in.InstrumentHandle)
	router.Get("/wishes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	for _, id := range []string{"1", "2"} {
		_, err := resty.New().R().Get(ts.URL + "/wishes/" + id)
		require.NoError(t, err)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(in.requests.WithLabelValues("GET", "/wishes/{id}", "418")))
	assert.Equal(t, 1, testutil.CollectAndCount(in.duration))
}
