package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest/modeldto"
	serviceErrors "github.com/danilovkiri/dk_go_wishlist/internal/service/errors"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/images"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/wishes"
)

const (
	maxUploadSize  = 32 << 20
	uploadTimeout  = 15 * time.Second
	heartbeatEvery = 25 * time.Second
)

// Gallery defines the image operations used by WishHandler.
type Gallery interface {
	Upload(ctx context.Context, owner string, wishID int64, files []images.File) ([]modelwish.WishImage, error)
	Remove(ctx context.Context, owner string, wishID int64, imageIDs ...int64) error
}

// WishHandler serves the owner-facing wish endpoints.
type WishHandler struct {
	provider wishes.Provider
	gallery  Gallery
	log      *logrus.Logger
}

// InitWishHandler initializes a WishHandler object and sets its attributes.
func InitWishHandler(provider wishes.Provider, gallery Gallery, log *logrus.Logger) (*WishHandler, error) {
	if provider == nil || gallery == nil {
		return nil, errors.New("nil service was passed to wish handler initializer")
	}
	return &WishHandler{provider: provider, gallery: gallery, log: log}, nil
}

// HandleList returns one page of the caller's wishes.
func (h *WishHandler) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		params, err := listParams(r)
		if err != nil {
			writeError(w, h.log, "HandleList", err)
			return
		}
		result, err := h.provider.List(ctx, middleware.UserIDFromContext(r.Context()), params)
		if err != nil {
			writeError(w, h.log, "HandleList", err)
			return
		}
		if result.Data == nil {
			result.Data = []modelwish.WishView{}
		}
		w.Header().Set("X-Total-Count", strconv.Itoa(result.Total))
		writeJSON(w, http.StatusOK, result)
	}
}

// HandleCreate stores a new wish.
func (h *WishHandler) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		var fields modelwish.WishFields
		if err := decodeJSON(r, &fields); err != nil {
			writeError(w, h.log, "HandleCreate", err)
			return
		}
		view, err := h.provider.Create(ctx, middleware.UserIDFromContext(r.Context()), fields)
		if err != nil {
			writeError(w, h.log, "HandleCreate", err)
			return
		}
		h.log.WithField("wish_id", view.ID).Info("wish created")
		writeJSON(w, http.StatusCreated, view)
	}
}

// HandleGet returns one wish of the caller.
func (h *WishHandler) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, h.log, "HandleGet", err)
			return
		}
		view, err := h.provider.GetOne(ctx, middleware.UserIDFromContext(r.Context()), id)
		if err != nil {
			writeError(w, h.log, "HandleGet", err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// HandleUpdate applies a partial update to one wish of the caller.
func (h *WishHandler) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, h.log, "HandleUpdate", err)
			return
		}
		var fields modelwish.WishFields
		if err := decodeJSON(r, &fields); err != nil {
			writeError(w, h.log, "HandleUpdate", err)
			return
		}
		view, err := h.provider.Update(ctx, middleware.UserIDFromContext(r.Context()), id, fields)
		if err != nil {
			writeError(w, h.log, "HandleUpdate", err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// HandleDelete schedules the removal of one wish, it can be undone until the grace period ends.
func (h *WishHandler) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, h.log, "HandleDelete", err)
			return
		}
		if err := h.provider.Delete(ctx, middleware.UserIDFromContext(r.Context()), id); err != nil {
			writeError(w, h.log, "HandleDelete", err)
			return
		}
		writeJSON(w, http.StatusAccepted, modeldto.ResponseDelete{
			ID:       id,
			UndoPath: fmt.Sprintf("/api/wishes/%d/undo", id),
		})
	}
}

// HandleUndo cancels a pending deletion.
func (h *WishHandler) HandleUndo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, h.log, "HandleUndo", err)
			return
		}
		view, err := h.provider.Undo(ctx, middleware.UserIDFromContext(r.Context()), id)
		if err != nil {
			writeError(w, h.log, "HandleUndo", err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// HandleUploadImages adds the multipart "files" to the gallery of a wish.
func (h *WishHandler) HandleUploadImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), uploadTimeout)
		defer cancel()
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, h.log, "HandleUploadImages", err)
			return
		}
		files, err := readFiles(r)
		if err != nil {
			writeError(w, h.log, "HandleUploadImages", err)
			return
		}
		added, err := h.gallery.Upload(ctx, middleware.UserIDFromContext(r.Context()), id, files)
		if err != nil {
			writeError(w, h.log, "HandleUploadImages", err)
			return
		}
		writeJSON(w, http.StatusCreated, added)
	}
}

// HandleDeleteImage removes one image from the gallery of a wish.
func (h *WishHandler) HandleDeleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, h.log, "HandleDeleteImage", err)
			return
		}
		imageID, err := idParam(r, "imageID")
		if err != nil {
			writeError(w, h.log, "HandleDeleteImage", err)
			return
		}
		if err := h.gallery.Remove(ctx, middleware.UserIDFromContext(r.Context()), id, imageID); err != nil {
			writeError(w, h.log, "HandleDeleteImage", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleEvents streams the caller's wish events as server-sent events.
func (h *WishHandler) HandleEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}
		// the server write timeout would cut the stream otherwise
		_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

		owner := middleware.UserIDFromContext(r.Context())
		events := h.provider.Subscribe(r.Context(), owner)
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, ": connected\n\n")
		flusher.Flush()

		ticker := time.NewTicker(heartbeatEvery)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				data, err := json.Marshal(ev)
				if err != nil {
					h.log.WithField("op", "HandleEvents").Error(err)
					continue
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
				flusher.Flush()
			case <-ticker.C:
				io.WriteString(w, ": ping\n\n")
				flusher.Flush()
			}
		}
	}
}

func listParams(r *http.Request) (modelwish.ListParams, error) {
	q := r.URL.Query()
	var params modelwish.ListParams
	if v := q.Get("status"); v != "" {
		status := modelwish.Status(v)
		if !status.Valid() {
			return params, &serviceErrors.ServiceIncorrectInput{Msg: "invalid status " + v}
		}
		params.Status = &status
	}
	if v := q.Get("is_public"); v != "" {
		isPublic, err := strconv.ParseBool(v)
		if err != nil {
			return params, &serviceErrors.ServiceIncorrectInput{Msg: "invalid is_public", Err: err}
		}
		params.IsPublic = &isPublic
	}
	switch sort := modelwish.SortField(q.Get("sort")); sort {
	case "":
		params.Sort = modelwish.SortCreatedAt
		params.Desc = true
	case modelwish.SortCreatedAt, modelwish.SortUpdatedAt, modelwish.SortName, modelwish.SortPrice:
		params.Sort = sort
	default:
		return params, &serviceErrors.ServiceIncorrectInput{Msg: "invalid sort " + string(sort)}
	}
	switch q.Get("order") {
	case "":
	case "asc":
		params.Desc = false
	case "desc":
		params.Desc = true
	default:
		return params, &serviceErrors.ServiceIncorrectInput{Msg: "invalid order"}
	}
	var err error
	if params.Limit, err = nonNegative(q.Get("limit")); err != nil {
		return params, err
	}
	if params.Offset, err = nonNegative(q.Get("offset")); err != nil {
		return params, err
	}
	return params, nil
}

func nonNegative(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, &serviceErrors.ServiceIncorrectInput{Msg: "invalid pagination value " + v, Err: err}
	}
	return n, nil
}

func readFiles(r *http.Request) ([]images.File, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, &serviceErrors.ServiceIncorrectInput{Msg: "invalid multipart form", Err: err}
	}
	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		return nil, &serviceErrors.ServiceIncorrectInput{Msg: "no files uploaded"}
	}
	files := make([]images.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, images.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}
