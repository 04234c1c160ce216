// Package images manages the photo gallery of wishes.
package images

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	serviceErrors "github.com/danilovkiri/dk_go_wishlist/internal/service/errors"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
)

// MaxRetries is the number of extra attempts made for a failed upload.
const MaxRetries = 2

// File is one uploaded image.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Store is the part of the storage a Gallery depends on.
type Store interface {
	storage.WishGetter
	storage.ImageStorage
}

// Gallery struct defines data structure handling and provides support for adding new implementations.
type Gallery struct {
	Storage Store
	Bucket  storage.Bucket
	log     *logrus.Logger
}

// InitGallery initializes a Gallery object and sets its attributes.
func InitGallery(s Store, bucket storage.Bucket, log *logrus.Logger) (*Gallery, error) {
	if s == nil || bucket == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	return &Gallery{Storage: s, Bucket: bucket, log: log}, nil
}

// Upload stores files in the bucket and attaches them to a wish of owner.
func (g *Gallery) Upload(ctx context.Context, owner string, wishID int64, files []File) ([]modelwish.WishImage, error) {
	if len(files) == 0 {
		return nil, &serviceErrors.ServiceIncorrectInput{Msg: "no files"}
	}
	if _, err := g.Storage.GetWish(ctx, owner, wishID); err != nil {
		return nil, err
	}
	objectIDs := make([]string, 0, len(files))
	for _, f := range files {
		objectID := ObjectID(wishID, f)
		if err := g.upload(ctx, objectID, f); err != nil {
			g.cleanup(ctx, objectIDs)
			return nil, err
		}
		objectIDs = append(objectIDs, objectID)
	}
	images, err := g.Storage.AddImages(ctx, wishID, objectIDs)
	if err != nil {
		g.cleanup(ctx, objectIDs)
		return nil, err
	}
	for i := range images {
		images[i].URL = g.Bucket.PublicURL(images[i].StorageObjectID)
	}
	return images, nil
}

// Remove detaches images from a wish of owner and deletes their objects.
func (g *Gallery) Remove(ctx context.Context, owner string, wishID int64, imageIDs ...int64) error {
	if _, err := g.Storage.GetWish(ctx, owner, wishID); err != nil {
		return err
	}
	objectIDs := make([]string, 0, len(imageIDs))
	for _, id := range imageIDs {
		img, err := g.Storage.GetImage(ctx, wishID, id)
		if err != nil {
			return err
		}
		objectIDs = append(objectIDs, img.StorageObjectID)
	}
	if err := g.Storage.DeleteImages(ctx, wishID, imageIDs); err != nil {
		return err
	}
	return g.Bucket.Remove(ctx, objectIDs...)
}

// upload tries once plus MaxRetries times.
func (g *Gallery) upload(ctx context.Context, objectID string, f File) error {
	var err error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if err = g.Bucket.Upload(ctx, objectID, f.Data, f.ContentType); err == nil {
			return nil
		}
		g.log.WithField("object", objectID).Warnf("upload attempt %d failed: %v", attempt+1, err)
		if ctx.Err() != nil {
			break
		}
	}
	return &storageErrors.UploadError{Object: objectID, Attempts: MaxRetries + 1, Err: err}
}

func (g *Gallery) cleanup(ctx context.Context, objectIDs []string) {
	if len(objectIDs) == 0 {
		return
	}
	if err := g.Bucket.Remove(ctx, objectIDs...); err != nil {
		g.log.Warn(err)
	}
}

// ObjectID builds the bucket path {wishID}/{ulid}.{ext} of f.
func ObjectID(wishID int64, f File) string {
	return fmt.Sprintf("%d/%s.%s", wishID, ulid.Make().String(), Extension(f))
}

// Extension picks the file extension from the name, then the content type, defaulting to jpg.
func Extension(f File) string {
	if ext := strings.ToLower(strings.TrimPrefix(path.Ext(f.Name), ".")); ext != "" && isAlnum(ext) {
		return ext
	}
	switch {
	case strings.Contains(f.ContentType, "png"):
		return "png"
	case strings.Contains(f.ContentType, "gif"):
		return "gif"
	case strings.Contains(f.ContentType, "webp"):
		return "webp"
	}
	return "jpg"
}

func isAlnum(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
