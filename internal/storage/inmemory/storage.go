// Package inmemory provides functionality for keeping wishes, reservations and users
// in process memory implemented as maps.
package inmemory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
)

// Check interface implementation explicitly
var (
	_ storage.Storage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu           sync.Mutex
	log          *logrus.Logger
	wishes       map[int64]modelwish.Wish
	images       map[int64]modelwish.WishImage
	reservations map[int64]modelwish.Reservation // keyed by wish ID
	users        map[string]modelaccount.User
	slugs        map[string]string
	wishSeq      int64
	imageSeq     int64
	resSeq       int64
	now          func() time.Time
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage(log *logrus.Logger) *Storage {
	return &Storage{
		log:          log,
		wishes:       make(map[int64]modelwish.Wish),
		images:       make(map[int64]modelwish.WishImage),
		reservations: make(map[int64]modelwish.Reservation),
		users:        make(map[string]modelaccount.User),
		slugs:        make(map[string]string),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// run executes fn under the storage lock in a goroutine and waits for either its result or ctx cancellation.
func (s *Storage) run(ctx context.Context, op string, fn func() error) error {
	// buffered so that an abandoned goroutine never blocks
	done := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		done <- fn()
	}()

	select {
	case <-ctx.Done():
		s.log.WithField("op", op).Debug(ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case err := <-done:
		if err != nil {
			s.log.WithField("op", op).Debug(err)
		}
		return err
	}
}

// ListWishes returns one page of the wishes owned by userID.
func (s *Storage) ListWishes(ctx context.Context, userID string, params modelwish.ListParams) (wishes []modelwish.Wish, total int, err error) {
	err = s.run(ctx, "ListWishes", func() error {
		excluded := make(map[int64]bool, len(params.Exclude))
		for _, id := range params.Exclude {
			excluded[id] = true
		}
		var all []modelwish.Wish
		for _, w := range s.wishes {
			if w.UserID != userID || excluded[w.ID] {
				continue
			}
			if params.Status != nil && w.Status != *params.Status {
				continue
			}
			if params.IsPublic != nil && w.IsPublic != *params.IsPublic {
				continue
			}
			all = append(all, s.withImages(w))
		}
		sortWishes(all, params.Sort, params.Desc)
		total = len(all)
		wishes = paginate(all, params.Limit, params.Offset)
		return nil
	})
	return wishes, total, err
}

// GetWish returns a wish owned by userID.
func (s *Storage) GetWish(ctx context.Context, userID string, id int64) (wish modelwish.Wish, err error) {
	err = s.run(ctx, "GetWish", func() error {
		w, ok := s.wishes[id]
		if !ok || w.UserID != userID {
			return &storageErrors.NotFoundError{Entity: "wish", ID: strconv.FormatInt(id, 10)}
		}
		wish = s.withImages(w)
		return nil
	})
	return wish, err
}

// CreateWish stores a new wish and assigns its identifier and timestamps.
func (s *Storage) CreateWish(ctx context.Context, wish modelwish.Wish) (created modelwish.Wish, err error) {
	err = s.run(ctx, "CreateWish", func() error {
		s.wishSeq++
		wish.ID = s.wishSeq
		wish.CreatedAt = s.now()
		wish.UpdatedAt = wish.CreatedAt
		if wish.Status == "" {
			wish.Status = modelwish.StatusAvailable
		}
		wish.Images = nil
		s.wishes[wish.ID] = wish
		created = wish
		return nil
	})
	return created, err
}

// UpdateWish replaces the server fields of an existing wish owned by wish.UserID.
func (s *Storage) UpdateWish(ctx context.Context, wish modelwish.Wish) (updated modelwish.Wish, err error) {
	err = s.run(ctx, "UpdateWish", func() error {
		old, ok := s.wishes[wish.ID]
		if !ok || old.UserID != wish.UserID {
			return &storageErrors.NotFoundError{Entity: "wish", ID: strconv.FormatInt(wish.ID, 10)}
		}
		wish.CreatedAt = old.CreatedAt
		wish.UpdatedAt = s.now()
		wish.Images = nil
		s.wishes[wish.ID] = wish
		updated = s.withImages(wish)
		return nil
	})
	return updated, err
}

// DeleteWish removes a wish together with its images and reservation.
func (s *Storage) DeleteWish(ctx context.Context, userID string, id int64) error {
	return s.run(ctx, "DeleteWish", func() error {
		w, ok := s.wishes[id]
		if !ok || w.UserID != userID {
			return &storageErrors.NotFoundError{Entity: "wish", ID: strconv.FormatInt(id, 10)}
		}
		delete(s.wishes, id)
		delete(s.reservations, id)
		for imageID, img := range s.images {
			if img.WishID == id {
				delete(s.images, imageID)
			}
		}
		return nil
	})
}

// ListPublicWishes returns the public wishes of userID ordered by creation.
func (s *Storage) ListPublicWishes(ctx context.Context, userID string) (wishes []modelwish.Wish, err error) {
	err = s.run(ctx, "ListPublicWishes", func() error {
		for _, w := range s.wishes {
			if w.UserID == userID && w.IsPublic {
				wishes = append(wishes, s.withImages(w))
			}
		}
		sortWishes(wishes, modelwish.SortCreatedAt, false)
		return nil
	})
	return wishes, err
}

// GetPublicWish returns a public wish of userID.
func (s *Storage) GetPublicWish(ctx context.Context, userID string, id int64) (wish modelwish.Wish, err error) {
	err = s.run(ctx, "GetPublicWish", func() error {
		w, ok := s.wishes[id]
		if !ok || w.UserID != userID || !w.IsPublic {
			return &storageErrors.NotFoundError{Entity: "wish", ID: strconv.FormatInt(id, 10)}
		}
		wish = s.withImages(w)
		return nil
	})
	return wish, err
}

// AddImages attaches stored objects to a wish gallery.
func (s *Storage) AddImages(ctx context.Context, wishID int64, objectIDs []string) (images []modelwish.WishImage, err error) {
	err = s.run(ctx, "AddImages", func() error {
		if _, ok := s.wishes[wishID]; !ok {
			return &storageErrors.NotFoundError{Entity: "wish", ID: strconv.FormatInt(wishID, 10)}
		}
		for _, objectID := range objectIDs {
			s.imageSeq++
			img := modelwish.WishImage{ID: s.imageSeq, WishID: wishID, StorageObjectID: objectID}
			s.images[img.ID] = img
			images = append(images, img)
		}
		return nil
	})
	return images, err
}

// GetImage returns one gallery entry of a wish.
func (s *Storage) GetImage(ctx context.Context, wishID, imageID int64) (image modelwish.WishImage, err error) {
	err = s.run(ctx, "GetImage", func() error {
		img, ok := s.images[imageID]
		if !ok || img.WishID != wishID {
			return &storageErrors.NotFoundError{Entity: "image", ID: strconv.FormatInt(imageID, 10)}
		}
		image = img
		return nil
	})
	return image, err
}

// DeleteImages detaches gallery entries from a wish.
func (s *Storage) DeleteImages(ctx context.Context, wishID int64, imageIDs []int64) error {
	return s.run(ctx, "DeleteImages", func() error {
		for _, id := range imageIDs {
			if img, ok := s.images[id]; ok && img.WishID == wishID {
				delete(s.images, id)
			}
		}
		return nil
	})
}

// AddReservation reserves a wish for userID, failing if it is already reserved.
func (s *Storage) AddReservation(ctx context.Context, wishID int64, userID string) (reservation modelwish.Reservation, err error) {
	err = s.run(ctx, "AddReservation", func() error {
		if _, ok := s.reservations[wishID]; ok {
			return &storageErrors.AlreadyExistsError{Entity: "reservation", Key: strconv.FormatInt(wishID, 10)}
		}
		s.resSeq++
		reservation = modelwish.Reservation{ID: s.resSeq, WishID: wishID, UserID: userID, CreatedAt: s.now()}
		s.reservations[wishID] = reservation
		return nil
	})
	return reservation, err
}

// DeleteReservation cancels the reservation userID holds on a wish.
func (s *Storage) DeleteReservation(ctx context.Context, wishID int64, userID string) error {
	return s.run(ctx, "DeleteReservation", func() error {
		r, ok := s.reservations[wishID]
		if !ok || r.UserID != userID {
			return &storageErrors.NotFoundError{Entity: "reservation", ID: strconv.FormatInt(wishID, 10)}
		}
		delete(s.reservations, wishID)
		return nil
	})
}

// ListReservationsByWishIDs returns the reservations held on the given wishes.
func (s *Storage) ListReservationsByWishIDs(ctx context.Context, wishIDs []int64) (reservations []modelwish.ReservationInfo, err error) {
	err = s.run(ctx, "ListReservationsByWishIDs", func() error {
		for _, id := range wishIDs {
			r, ok := s.reservations[id]
			if !ok {
				continue
			}
			info := modelwish.ReservationInfo{Reservation: r}
			if u, ok := s.users[r.UserID]; ok {
				info.ReserverName = u.ContactName
			}
			reservations = append(reservations, info)
		}
		return nil
	})
	return reservations, err
}

// ListReservationsByUserID returns the reservations made by userID.
func (s *Storage) ListReservationsByUserID(ctx context.Context, userID string) (reservations []modelwish.Reservation, err error) {
	err = s.run(ctx, "ListReservationsByUserID", func() error {
		for _, r := range s.reservations {
			if r.UserID == userID {
				reservations = append(reservations, r)
			}
		}
		sort.Slice(reservations, func(i, j int) bool { return reservations[i].ID < reservations[j].ID })
		return nil
	})
	return reservations, err
}

// CreateUser stores a new user, failing on a slug already taken.
func (s *Storage) CreateUser(ctx context.Context, user modelaccount.User) (created modelaccount.User, err error) {
	err = s.run(ctx, "CreateUser", func() error {
		if _, ok := s.users[user.ID]; ok {
			return &storageErrors.AlreadyExistsError{Entity: "user", Key: user.ID}
		}
		if _, ok := s.slugs[user.Slug]; ok {
			return &storageErrors.AlreadyExistsError{Entity: "slug", Key: user.Slug}
		}
		user.CreatedAt = s.now()
		s.users[user.ID] = user
		s.slugs[user.Slug] = user.ID
		created = user
		return nil
	})
	return created, err
}

// GetUser returns a user by identifier.
func (s *Storage) GetUser(ctx context.Context, id string) (user modelaccount.User, err error) {
	err = s.run(ctx, "GetUser", func() error {
		u, ok := s.users[id]
		if !ok {
			return &storageErrors.NotFoundError{Entity: "user", ID: id}
		}
		user = u
		return nil
	})
	return user, err
}

// GetUserBySlug returns the user owning a public slug.
func (s *Storage) GetUserBySlug(ctx context.Context, slug string) (user modelaccount.User, err error) {
	err = s.run(ctx, "GetUserBySlug", func() error {
		id, ok := s.slugs[slug]
		if !ok {
			return &storageErrors.NotFoundError{Entity: "slug", ID: slug}
		}
		user = s.users[id]
		return nil
	})
	return user, err
}

// UpdateUser replaces the profile fields of an existing user.
func (s *Storage) UpdateUser(ctx context.Context, user modelaccount.User) (updated modelaccount.User, err error) {
	err = s.run(ctx, "UpdateUser", func() error {
		old, ok := s.users[user.ID]
		if !ok {
			return &storageErrors.NotFoundError{Entity: "user", ID: user.ID}
		}
		if user.Slug != old.Slug {
			if _, taken := s.slugs[user.Slug]; taken {
				return &storageErrors.AlreadyExistsError{Entity: "slug", Key: user.Slug}
			}
			delete(s.slugs, old.Slug)
			s.slugs[user.Slug] = user.ID
		}
		user.CreatedAt = old.CreatedAt
		s.users[user.ID] = user
		updated = user
		return nil
	})
	return updated, err
}

// LastWishCurrency returns the currency of the most recently created wish of userID carrying one.
func (s *Storage) LastWishCurrency(ctx context.Context, userID string) (currency *string, err error) {
	err = s.run(ctx, "LastWishCurrency", func() error {
		var latest *modelwish.Wish
		for id := range s.wishes {
			w := s.wishes[id]
			if w.UserID != userID || w.Currency == nil {
				continue
			}
			if latest == nil || w.ID > latest.ID {
				latest = &w
			}
		}
		if latest != nil {
			currency = latest.Currency
		}
		return nil
	})
	return currency, err
}

// PingDB is a mock for PSQL DB pinger for inmemory DB handling.
func (s *Storage) PingDB() error {
	return nil
}

// CloseDB is a mock for PSQL DB closer for inmemory DB handling.
func (s *Storage) CloseDB() error {
	return nil
}

// withImages attaches the gallery of w, expects the lock to be held.
func (s *Storage) withImages(w modelwish.Wish) modelwish.Wish {
	w.Images = nil
	for _, img := range s.images {
		if img.WishID == w.ID {
			w.Images = append(w.Images, img)
		}
	}
	sort.Slice(w.Images, func(i, j int) bool { return w.Images[i].ID < w.Images[j].ID })
	return w
}

func sortWishes(wishes []modelwish.Wish, field modelwish.SortField, desc bool) {
	less := func(a, b modelwish.Wish) bool {
		switch field {
		case modelwish.SortName:
			if !strings.EqualFold(a.Name, b.Name) {
				return strings.ToLower(a.Name) < strings.ToLower(b.Name)
			}
		case modelwish.SortUpdatedAt:
			if !a.UpdatedAt.Equal(b.UpdatedAt) {
				return a.UpdatedAt.Before(b.UpdatedAt)
			}
		case modelwish.SortPrice:
			pa, pb := price(a), price(b)
			if pa != pb {
				return pa < pb
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	}
	sort.SliceStable(wishes, func(i, j int) bool {
		if desc {
			return less(wishes[j], wishes[i])
		}
		return less(wishes[i], wishes[j])
	})
}

func price(w modelwish.Wish) float64 {
	if w.Price == nil {
		return 0
	}
	p, err := strconv.ParseFloat(*w.Price, 64)
	if err != nil {
		return 0
	}
	return p
}

func paginate(wishes []modelwish.Wish, limit, offset int) []modelwish.Wish {
	if offset >= len(wishes) {
		return []modelwish.Wish{}
	}
	wishes = wishes[offset:]
	if limit > 0 && limit < len(wishes) {
		wishes = wishes[:limit]
	}
	return wishes
}
