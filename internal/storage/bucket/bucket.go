// Package bucket provides an object store for wish images on top of a hackpadfs filesystem.
package bucket

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/hack-pad/hackpadfs"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
)

// Check interface implementation explicitly
var (
	_ storage.Bucket = (*Bucket)(nil)
)

// Name is the bucket holding wish images.
const Name = "wish-images"

// Bucket keeps objects as files named after their object id.
type Bucket struct {
	fs      hackpadfs.FS
	baseURL string
	log     *logrus.Logger
}

// InitBucket initializes a Bucket serving public URLs under baseURL.
func InitBucket(fsys hackpadfs.FS, baseURL string, log *logrus.Logger) *Bucket {
	return &Bucket{
		fs:      fsys,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// Upload stores data under objectID, creating parent directories.
func (b *Bucket) Upload(ctx context.Context, objectID string, data []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	if !fs.ValidPath(objectID) {
		return &storageErrors.FileWriteError{Path: objectID, Err: fs.ErrInvalid}
	}
	if dir := path.Dir(objectID); dir != "." {
		if err := hackpadfs.MkdirAll(b.fs, dir, 0o755); err != nil {
			return &storageErrors.FileWriteError{Path: objectID, Err: err}
		}
	}
	if err := hackpadfs.WriteFullFile(b.fs, objectID, data, 0o644); err != nil {
		return &storageErrors.FileWriteError{Path: objectID, Err: err}
	}
	b.log.WithField("object", objectID).Debug("object uploaded")
	return nil
}

// Download returns the content of objectID.
func (b *Bucket) Download(ctx context.Context, objectID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	if !fs.ValidPath(objectID) {
		return nil, &storageErrors.NotFoundError{Entity: "object", ID: objectID, Err: fs.ErrInvalid}
	}
	data, err := hackpadfs.ReadFile(b.fs, objectID)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &storageErrors.NotFoundError{Entity: "object", ID: objectID, Err: err}
		}
		return nil, err
	}
	return data, nil
}

// Remove deletes objects, missing objects are ignored.
func (b *Bucket) Remove(_ context.Context, objectIDs ...string) error {
	var errs []error
	for _, id := range objectIDs {
		if !fs.ValidPath(id) {
			continue
		}
		if err := hackpadfs.Remove(b.fs, id); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PublicURL returns the address objectID is served from.
func (b *Bucket) PublicURL(objectID string) string {
	return b.baseURL + "/storage/" + Name + "/" + objectID
}
