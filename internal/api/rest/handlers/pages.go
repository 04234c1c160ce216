package handlers

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_wishlist/internal/i18n"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/accounts"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/reserver"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/wishes"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// pageData is the model of every rendered page.
type pageData struct {
	Locale  string
	User    *modelaccount.User
	Wishes  []modelwish.WishView
	List    *modelwish.PublicList
	catalog *i18n.Catalog
}

// T translates key in the page locale.
func (d pageData) T(key string) string {
	return d.catalog.T(d.Locale, key)
}

// PageHandler renders the localized HTML pages.
type PageHandler struct {
	provider wishes.Provider
	accounts accounts.Manager
	reserver reserver.Reserver
	catalog  *i18n.Catalog
	log      *logrus.Logger
}

// InitPageHandler initializes a PageHandler object and sets its attributes.
func InitPageHandler(p wishes.Provider, m accounts.Manager, rs reserver.Reserver, catalog *i18n.Catalog, log *logrus.Logger) (*PageHandler, error) {
	if p == nil || m == nil || rs == nil || catalog == nil {
		return nil, errors.New("nil service was passed to page handler initializer")
	}
	return &PageHandler{provider: p, accounts: m, reserver: rs, catalog: catalog, log: log}, nil
}

// HandleWishesPage renders the owner's list, or the anonymous sign-in page without a session.
func (h *PageHandler) HandleWishesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		data := h.data(r)
		owner := middleware.UserIDFromContext(r.Context())
		if owner == "" {
			h.render(w, "signin.html", data)
			return
		}
		user, err := h.accounts.GetProfile(ctx, owner)
		if err != nil {
			h.fail(w, "HandleWishesPage", err)
			return
		}
		result, err := h.provider.List(ctx, owner, modelwish.ListParams{Sort: modelwish.SortCreatedAt, Desc: true})
		if err != nil {
			h.fail(w, "HandleWishesPage", err)
			return
		}
		data.User = &user
		data.Wishes = result.Data
		h.render(w, "wishes.html", data)
	}
}

// HandlePublicPage renders the shared list of a slug.
func (h *PageHandler) HandlePublicPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		list, err := h.reserver.PublicList(ctx, chi.URLParam(r, "slug"), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			h.fail(w, "HandlePublicPage", err)
			return
		}
		data := h.data(r)
		data.List = &list
		h.render(w, "public.html", data)
	}
}

func (h *PageHandler) data(r *http.Request) pageData {
	locale := middleware.LocaleFromContext(r.Context())
	if locale == "" {
		locale = h.catalog.Default()
	}
	return pageData{Locale: locale, catalog: h.catalog}
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data pageData) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.fail(w, "render "+name, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (h *PageHandler) fail(w http.ResponseWriter, op string, err error) {
	status := statusOf(err)
	h.log.WithField("op", op).Warn(err)
	http.Error(w, http.StatusText(status), status)
}
