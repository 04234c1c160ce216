package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/i18n"
)

// LocaleCookie remembers the last locale a visitor browsed in.
const LocaleCookie = "locale"

const localeCookieTTL = 365 * 24 * time.Hour

// LocaleFromContext returns the locale resolved by LocaleGate.
func LocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(localeKey).(string)
	return locale
}

// LocaleGate sets object structure.
type LocaleGate struct {
	catalog *i18n.Catalog
	log     *logrus.Logger
}

// NewLocaleGate initializes a new locale gate.
func NewLocaleGate(catalog *i18n.Catalog, log *logrus.Logger) *LocaleGate {
	return &LocaleGate{catalog: catalog, log: log}
}

// LocaleHandle validates the {locale} path segment, redirecting unsupported ones to the default locale.
func (g *LocaleGate) LocaleHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := chi.URLParam(r, "locale")
		if !i18n.IsSupported(locale) {
			target := "/" + g.catalog.Default() + strings.TrimPrefix(r.URL.Path, "/"+locale)
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		if err := g.catalog.Load(locale); err != nil {
			g.log.WithField("locale", locale).Error("bundle load failed: ", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:   LocaleCookie,
			Value:  locale,
			Path:   "/",
			MaxAge: int(localeCookieTTL.Seconds()),
		})
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), localeKey, locale)))
	})
}

// PreferredLocale picks the locale cookie when it names a supported locale, the default otherwise.
func (g *LocaleGate) PreferredLocale(r *http.Request) string {
	if c, err := r.Cookie(LocaleCookie); err == nil && i18n.IsSupported(c.Value) {
		return c.Value
	}
	return g.catalog.Default()
}
