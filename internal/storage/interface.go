//go:generate mockgen -source=interface.go -destination=../mocks/storage.go -package=mocks

// Package storage provides interfaces for types to be in compliance with.
package storage

import (
	"context"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
)

// WishGetter defines a set of methods for types implementing WishGetter.
type WishGetter interface {
	ListWishes(ctx context.Context, userID string, params modelwish.ListParams) (wishes []modelwish.Wish, total int, err error)
	GetWish(ctx context.Context, userID string, id int64) (modelwish.Wish, error)
}

// WishSetter defines a set of methods for types implementing WishSetter.
type WishSetter interface {
	CreateWish(ctx context.Context, wish modelwish.Wish) (modelwish.Wish, error)
	UpdateWish(ctx context.Context, wish modelwish.Wish) (modelwish.Wish, error)
	DeleteWish(ctx context.Context, userID string, id int64) error
}

// PublicWishGetter defines a set of methods for types implementing PublicWishGetter.
type PublicWishGetter interface {
	ListPublicWishes(ctx context.Context, userID string) ([]modelwish.Wish, error)
	GetPublicWish(ctx context.Context, userID string, id int64) (modelwish.Wish, error)
}

// ImageStorage defines a set of methods for types implementing ImageStorage.
type ImageStorage interface {
	AddImages(ctx context.Context, wishID int64, objectIDs []string) ([]modelwish.WishImage, error)
	GetImage(ctx context.Context, wishID, imageID int64) (modelwish.WishImage, error)
	DeleteImages(ctx context.Context, wishID int64, imageIDs []int64) error
}

// WishStorage defines a set of embedded interfaces for types implementing WishStorage.
type WishStorage interface {
	WishGetter
	WishSetter
	PublicWishGetter
	ImageStorage
}

// ReservationStorage defines a set of methods for types implementing ReservationStorage.
type ReservationStorage interface {
	AddReservation(ctx context.Context, wishID int64, userID string) (modelwish.Reservation, error)
	DeleteReservation(ctx context.Context, wishID int64, userID string) error
	ListReservationsByWishIDs(ctx context.Context, wishIDs []int64) ([]modelwish.ReservationInfo, error)
	ListReservationsByUserID(ctx context.Context, userID string) ([]modelwish.Reservation, error)
}

// UserStorage defines a set of methods for types implementing UserStorage.
type UserStorage interface {
	CreateUser(ctx context.Context, user modelaccount.User) (modelaccount.User, error)
	GetUser(ctx context.Context, id string) (modelaccount.User, error)
	GetUserBySlug(ctx context.Context, slug string) (modelaccount.User, error)
	UpdateUser(ctx context.Context, user modelaccount.User) (modelaccount.User, error)
	LastWishCurrency(ctx context.Context, userID string) (*string, error)
}

// Pinger defines a set of methods for types implementing Pinger.
type Pinger interface {
	PingDB() error
}

// Closer defines a set of methods for types implementing Closer.
type Closer interface {
	CloseDB() error
}

// Storage defines a set of embedded interfaces for the hosted database replacement.
type Storage interface {
	WishStorage
	ReservationStorage
	UserStorage
	Pinger
	Closer
}

// ExtrasStore defines a best-effort key-value store for wish fields the server does not model.
type ExtrasStore interface {
	Get(ctx context.Context, id string) modelwish.WishFields
	Set(ctx context.Context, id string, fields modelwish.WishFields) error
	Remove(ctx context.Context, id string) error
}

// Bucket defines a set of methods for object storage used by wish images.
type Bucket interface {
	Upload(ctx context.Context, objectID string, data []byte, contentType string) error
	Download(ctx context.Context, objectID string) ([]byte, error)
	Remove(ctx context.Context, objectIDs ...string) error
	PublicURL(objectID string) string
}
