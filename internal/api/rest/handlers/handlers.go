// Package handlers provides http.HandlerFunc handler functions to be used for endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest/modeldto"
	serviceErrors "github.com/danilovkiri/dk_go_wishlist/internal/service/errors"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
)

// dbTimeout bounds every storage round trip of a handler.
const dbTimeout = 500 * time.Millisecond

// Sessions issues and clears session cookies.
type Sessions interface {
	SetSession(w http.ResponseWriter, userID string)
	ClearSession(w http.ResponseWriter)
}

// statusOf maps service and storage errors onto HTTP status codes.
func statusOf(err error) int {
	var (
		incorrect  *serviceErrors.ServiceIncorrectInput
		forbidden  *serviceErrors.ServiceForbidden
		notPending *serviceErrors.ServiceNotPending
		notFound   *storageErrors.NotFoundError
		exists     *storageErrors.AlreadyExistsError
		timeout    *storageErrors.ContextTimeoutExceededError
		fetch      *serviceErrors.ServiceFetchError
		upstream   *serviceErrors.ServiceUpstreamError
	)
	switch {
	case errors.As(err, &incorrect):
		return http.StatusBadRequest
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound), errors.As(err, &notPending):
		return http.StatusNotFound
	case errors.As(err, &exists):
		return http.StatusConflict
	// outbound fetch failures answer 500 even when they wrap a deadline
	case errors.As(err, &fetch), errors.As(err, &upstream):
		return http.StatusInternalServerError
	case errors.As(err, &timeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// writeError logs err under op and answers with its mapped status.
func writeError(w http.ResponseWriter, log *logrus.Logger, op string, err error) {
	status := statusOf(err)
	entry := log.WithField("op", op)
	if status >= http.StatusInternalServerError {
		entry.Error(err)
	} else {
		entry.Debug(err)
	}
	writeJSON(w, status, modeldto.ResponseError{Error: err.Error()})
}

// decodeJSON reads the request body into v, an empty body leaves v untouched.
func decodeJSON(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return &serviceErrors.ServiceIncorrectInput{Msg: "malformed JSON body", Err: err}
	}
	return nil
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, &serviceErrors.ServiceIncorrectInput{Msg: "invalid " + name, Err: err}
	}
	return id, nil
}
