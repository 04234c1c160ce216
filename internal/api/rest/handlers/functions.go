package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/enricher"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/searcher"
)

const fetchTimeout = 10 * time.Second

// Enricher defines the link preview used by FunctionHandler.
type Enricher interface {
	Enrich(ctx context.Context, rawURL string) (enricher.Metadata, error)
}

// Searcher defines the product search used by FunctionHandler.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]searcher.Item, error)
}

// FunctionHandler serves the outbound helper functions.
type FunctionHandler struct {
	enricher Enricher
	searcher Searcher
	log      *logrus.Logger
}

// InitFunctionHandler initializes a FunctionHandler object and sets its attributes.
func InitFunctionHandler(e Enricher, s Searcher, log *logrus.Logger) (*FunctionHandler, error) {
	if e == nil || s == nil {
		return nil, errors.New("nil service was passed to function handler initializer")
	}
	return &FunctionHandler{enricher: e, searcher: s, log: log}, nil
}

// HandleEnrich scrapes link-preview metadata of {"url": ...}.
func (h *FunctionHandler) HandleEnrich() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
		defer cancel()
		var req modeldto.RequestEnrich
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusInternalServerError, modeldto.ResponseError{Error: err.Error()})
			return
		}
		md, err := h.enricher.Enrich(ctx, req.URL)
		if err != nil {
			writeError(w, h.log, "HandleEnrich", err)
			return
		}
		writeJSON(w, http.StatusOK, md)
	}
}

// HandleSearch looks products up on the Amazon Product Advertising API.
func (h *FunctionHandler) HandleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
		defer cancel()
		var req modeldto.RequestSearch
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusInternalServerError, modeldto.ResponseError{Error: err.Error()})
			return
		}
		items, err := h.searcher.Search(ctx, req.Query, req.Limit)
		if err != nil {
			writeError(w, h.log, "HandleSearch", err)
			return
		}
		if items == nil {
			items = []searcher.Item{}
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseSearch{Items: items})
	}
}
