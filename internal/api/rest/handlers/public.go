package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/accounts"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/reserver"
)

// PublicHandler serves shared lists and reservations.
type PublicHandler struct {
	reserver reserver.Reserver
	accounts accounts.Manager
	sessions Sessions
	log      *logrus.Logger
}

// InitPublicHandler initializes a PublicHandler object and sets its attributes.
func InitPublicHandler(rs reserver.Reserver, m accounts.Manager, sessions Sessions, log *logrus.Logger) (*PublicHandler, error) {
	if rs == nil || m == nil || sessions == nil {
		return nil, errors.New("nil service was passed to public handler initializer")
	}
	return &PublicHandler{reserver: rs, accounts: m, sessions: sessions, log: log}, nil
}

// HandlePublicList returns the shared list of a slug as seen by the caller.
func (h *PublicHandler) HandlePublicList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		list, err := h.reserver.PublicList(ctx, chi.URLParam(r, "slug"), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, h.log, "HandlePublicList", err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// HandleReserve reserves a public wish, signing the caller in anonymously when needed.
func (h *PublicHandler) HandleReserve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, h.log, "HandleReserve", err)
			return
		}
		var contact reserver.Contact
		if err := decodeJSON(r, &contact); err != nil {
			writeError(w, h.log, "HandleReserve", err)
			return
		}
		viewer := middleware.UserIDFromContext(r.Context())
		if viewer == "" {
			user, err := h.accounts.SignInAnonymously(ctx)
			if err != nil {
				writeError(w, h.log, "HandleReserve", err)
				return
			}
			h.sessions.SetSession(w, user.ID)
			viewer = user.ID
		}
		reservation, err := h.reserver.Reserve(ctx, chi.URLParam(r, "slug"), id, viewer, contact)
		if err != nil {
			writeError(w, h.log, "HandleReserve", err)
			return
		}
		writeJSON(w, http.StatusCreated, reservation)
	}
}

// HandleCancelReservation drops the caller's reservation of a wish.
func (h *PublicHandler) HandleCancelReservation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		viewer := middleware.UserIDFromContext(r.Context())
		if viewer == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, h.log, "HandleCancelReservation", err)
			return
		}
		if err := h.reserver.CancelReservation(ctx, chi.URLParam(r, "slug"), id, viewer); err != nil {
			writeError(w, h.log, "HandleCancelReservation", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
