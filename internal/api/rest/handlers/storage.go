package handlers

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"path"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
)

// StorageHandler serves bucket objects and the database health check.
type StorageHandler struct {
	bucket storage.Bucket
	pinger storage.Pinger
	log    *logrus.Logger
}

// InitStorageHandler initializes a StorageHandler object and sets its attributes.
func InitStorageHandler(bucket storage.Bucket, pinger storage.Pinger, log *logrus.Logger) (*StorageHandler, error) {
	if bucket == nil || pinger == nil {
		return nil, errors.New("nil storage was passed to storage handler initializer")
	}
	return &StorageHandler{bucket: bucket, pinger: pinger, log: log}, nil
}

// HandleGetObject streams one object of the image bucket.
func (h *StorageHandler) HandleGetObject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		objectID := chi.URLParam(r, "*")
		data, err := h.bucket.Download(ctx, objectID)
		if err != nil {
			writeError(w, h.log, "HandleGetObject", err)
			return
		}
		contentType := mime.TypeByExtension(path.Ext(objectID))
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

// HandlePingDB checks the database connection.
func (h *StorageHandler) HandlePingDB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.pinger.PingDB(); err != nil {
			h.log.WithField("op", "HandlePingDB").Error(err)
			writeJSON(w, http.StatusInternalServerError, modeldto.ResponseError{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponsePing{Status: "ok"})
	}
}
