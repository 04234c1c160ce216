package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/accounts"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/currency"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/reserver"
)

// CurrencyGuesser defines the currency suggestion used by AccountHandler.
type CurrencyGuesser interface {
	Guess(ctx context.Context, userID, locale string) string
}

// AccountHandler serves sign-in, profile and currency endpoints.
type AccountHandler struct {
	accounts accounts.Manager
	reserver reserver.Reserver
	guesser  CurrencyGuesser
	sessions Sessions
	log      *logrus.Logger
}

// InitAccountHandler initializes an AccountHandler object and sets its attributes.
func InitAccountHandler(m accounts.Manager, rs reserver.Reserver, g CurrencyGuesser, sessions Sessions, log *logrus.Logger) (*AccountHandler, error) {
	if m == nil || rs == nil || g == nil || sessions == nil {
		return nil, errors.New("nil service was passed to account handler initializer")
	}
	return &AccountHandler{accounts: m, reserver: rs, guesser: g, sessions: sessions, log: log}, nil
}

// HandleSignIn creates an anonymous user and issues its session.
// A local "redirect" query parameter turns the response into a 303 redirect.
func (h *AccountHandler) HandleSignIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		user, err := h.accounts.SignInAnonymously(ctx)
		if err != nil {
			writeError(w, h.log, "HandleSignIn", err)
			return
		}
		h.sessions.SetSession(w, user.ID)
		h.log.WithField("user_id", user.ID).Info("anonymous user signed in")
		if target := r.URL.Query().Get("redirect"); isLocalPath(target) {
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// HandleLogout clears the session cookie.
func (h *AccountHandler) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.ClearSession(w)
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleGetProfile returns the caller's profile.
func (h *AccountHandler) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		user, err := h.accounts.GetProfile(ctx, middleware.UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, h.log, "HandleGetProfile", err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// HandleUpdateProfile applies a partial profile update.
func (h *AccountHandler) HandleUpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		var fields modelaccount.ProfileFields
		if err := decodeJSON(r, &fields); err != nil {
			writeError(w, h.log, "HandleUpdateProfile", err)
			return
		}
		user, err := h.accounts.UpdateProfile(ctx, middleware.UserIDFromContext(r.Context()), fields)
		if err != nil {
			writeError(w, h.log, "HandleUpdateProfile", err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// HandleMyReservations lists the reservations held by the caller.
func (h *AccountHandler) HandleMyReservations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		list, err := h.reserver.MyReservations(ctx, middleware.UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, h.log, "HandleMyReservations", err)
			return
		}
		if list == nil {
			list = []modelwish.Reservation{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// HandleGuessCurrency suggests a currency for a new wish of the caller.
func (h *AccountHandler) HandleGuessCurrency() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		locale := r.URL.Query().Get("locale")
		if locale == "" {
			locale = currency.FirstLocale(r.Header.Get("Accept-Language"))
		}
		code := h.guesser.Guess(ctx, middleware.UserIDFromContext(r.Context()), locale)
		writeJSON(w, http.StatusOK, modeldto.ResponseCurrency{Currency: code})
	}
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.Contains(p, `\`)
}
