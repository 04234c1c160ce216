// Package reserver serves shared wishlists and the reservations made on them.
package reserver

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	serviceErrors "github.com/danilovkiri/dk_go_wishlist/internal/service/errors"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/reserver"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
)

// Check interface implementation explicitly
var (
	_ reserver.Reserver = (*Reserver)(nil)
)

// Store is the part of the storage a Reserver depends on.
type Store interface {
	storage.PublicWishGetter
	storage.ReservationStorage
	storage.UserStorage
}

// Reserver struct defines data structure handling and provides support for adding new implementations.
type Reserver struct {
	Storage  Store
	Bucket   storage.Bucket
	validate *validator.Validate
	log      *logrus.Logger
}

// InitReserver initializes a Reserver object and sets its attributes.
func InitReserver(s Store, bucket storage.Bucket, log *logrus.Logger) (*Reserver, error) {
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	return &Reserver{
		Storage:  s,
		Bucket:   bucket,
		validate: validator.New(),
		log:      log,
	}, nil
}

// PublicList returns the public wishes of the slug owner. Reservation state is only
// looked up for viewers other than the owner.
func (r *Reserver) PublicList(ctx context.Context, slug, viewerID string) (modelwish.PublicList, error) {
	owner, err := r.Storage.GetUserBySlug(ctx, slug)
	if err != nil {
		return modelwish.PublicList{}, err
	}
	rows, err := r.Storage.ListPublicWishes(ctx, owner.ID)
	if err != nil {
		return modelwish.PublicList{}, err
	}
	list := modelwish.PublicList{
		Slug:    owner.Slug,
		Title:   owner.DisplayName,
		IsOwner: viewerID != "" && viewerID == owner.ID,
		Wishes:  make([]modelwish.PublicWish, 0, len(rows)),
	}
	for _, row := range rows {
		w := modelwish.NewPublicWish(row)
		w.Images = r.withURLs(w.Images)
		list.Wishes = append(list.Wishes, w)
	}
	if list.IsOwner || len(rows) == 0 {
		return list, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	reservations, err := r.Storage.ListReservationsByWishIDs(ctx, ids)
	if err != nil {
		return modelwish.PublicList{}, err
	}
	byWish := make(map[int64]modelwish.ReservationInfo, len(reservations))
	for _, res := range reservations {
		byWish[res.WishID] = res
	}
	remaining := 0
	for i := range list.Wishes {
		res, ok := byWish[list.Wishes[i].ID]
		if !ok {
			remaining++
			continue
		}
		list.Wishes[i].Reserved = true
		list.Wishes[i].ReservedByMe = viewerID != "" && res.UserID == viewerID
		list.Wishes[i].ReservedByName = res.ReserverName
	}
	list.Remaining = &remaining
	return list, nil
}

// Reserve reserves a public wish of the slug owner for viewerID.
func (r *Reserver) Reserve(ctx context.Context, slug string, wishID int64, viewerID string, contact reserver.Contact) (modelwish.Reservation, error) {
	if err := r.validate.Struct(contact); err != nil {
		return modelwish.Reservation{}, &serviceErrors.ServiceIncorrectInput{Msg: "invalid contact", Err: err}
	}
	owner, err := r.Storage.GetUserBySlug(ctx, slug)
	if err != nil {
		return modelwish.Reservation{}, err
	}
	if owner.ID == viewerID {
		return modelwish.Reservation{}, &serviceErrors.ServiceForbidden{Msg: "owners cannot reserve their own wishes"}
	}
	if _, err := r.Storage.GetPublicWish(ctx, owner.ID, wishID); err != nil {
		return modelwish.Reservation{}, err
	}
	if contact.Name != nil || contact.Email != nil {
		if err := r.saveContact(ctx, viewerID, contact); err != nil {
			return modelwish.Reservation{}, err
		}
	}
	res, err := r.Storage.AddReservation(ctx, wishID, viewerID)
	if err != nil {
		return modelwish.Reservation{}, err
	}
	r.log.WithField("wish_id", wishID).Info("wish reserved")
	return res, nil
}

// CancelReservation removes the reservation viewerID holds on a public wish of the slug owner.
func (r *Reserver) CancelReservation(ctx context.Context, slug string, wishID int64, viewerID string) error {
	owner, err := r.Storage.GetUserBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if _, err := r.Storage.GetPublicWish(ctx, owner.ID, wishID); err != nil {
		return err
	}
	return r.Storage.DeleteReservation(ctx, wishID, viewerID)
}

// MyReservations lists the reservations made by userID.
func (r *Reserver) MyReservations(ctx context.Context, userID string) ([]modelwish.Reservation, error) {
	return r.Storage.ListReservationsByUserID(ctx, userID)
}

func (r *Reserver) saveContact(ctx context.Context, userID string, contact reserver.Contact) error {
	user, err := r.Storage.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if contact.Name != nil {
		user.ContactName = contact.Name
	}
	if contact.Email != nil {
		user.ContactEmail = contact.Email
	}
	_, err = r.Storage.UpdateUser(ctx, user)
	return err
}

func (r *Reserver) withURLs(images []modelwish.WishImage) []modelwish.WishImage {
	if r.Bucket == nil {
		return images
	}
	out := make([]modelwish.WishImage, len(images))
	for i, img := range images {
		img.URL = r.Bucket.PublicURL(img.StorageObjectID)
		out[i] = img
	}
	return out
}
