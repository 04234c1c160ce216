// Package middleware provides various middleware functionality.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/config"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/secretary"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"
	localeKey ctxKey = "locale"
)

// sessionTTL is the lifetime of the session cookie.
const sessionTTL = 365 * 24 * time.Hour

// UserIDFromContext returns the signed-in user, empty for anonymous visitors.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

// WithUserID stores userID in ctx.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// CookieHandler sets object structure.
type CookieHandler struct {
	sec secretary.Secretary
	cfg *config.Config
	log *logrus.Logger
}

// NewCookieHandler initializes a new cookie handler.
func NewCookieHandler(sec secretary.Secretary, cfg *config.Config, log *logrus.Logger) (*CookieHandler, error) {
	if sec == nil {
		return nil, errors.New("nil secretary was passed to cookie handler initializer")
	}
	return &CookieHandler{
		sec: sec,
		cfg: cfg,
		log: log,
	}, nil
}

// CookieHandle decodes the session cookie into the request context, an undecodable cookie is rejected.
func (c *CookieHandler) CookieHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(c.cfg.AuthKey)
		if errors.Is(err, http.ErrNoCookie) {
			next.ServeHTTP(w, r)
			return
		}
		userID, err := c.sec.Decode(cookie.Value)
		if err != nil || userID == "" {
			c.log.WithField("path", r.URL.Path).Debug("invalid session cookie")
			c.ClearSession(w)
			http.Error(w, "invalid session", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// RequireSession rejects requests carrying no session.
func (c *CookieHandler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserIDFromContext(r.Context()) == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SetSession issues the session cookie for userID.
func (c *CookieHandler) SetSession(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.cfg.AuthKey,
		Value:    c.sec.Encode(userID),
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession expires the session cookie.
func (c *CookieHandler) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.cfg.AuthKey,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
