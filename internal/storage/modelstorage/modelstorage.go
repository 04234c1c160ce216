// Package modelstorage provides locally used types and their structure for storage objects.
package modelstorage

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
)

// WishPostgresEntry is a row of the wishes table.
type WishPostgresEntry struct {
	ID          int64          `db:"id"`
	UserID      string         `db:"user_id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	URL         sql.NullString `db:"url"`
	Price       sql.NullString `db:"price"`
	Currency    sql.NullString `db:"currency"`
	ImageURL    sql.NullString `db:"image_url"`
	Priority    sql.NullInt32  `db:"priority"`
	IsPublic    bool           `db:"is_public"`
	Status      string         `db:"status"`
	Metadata    []byte         `db:"metadata"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// ToWish converts a row into the service representation.
func (e WishPostgresEntry) ToWish() modelwish.Wish {
	w := modelwish.Wish{
		ID:          e.ID,
		UserID:      e.UserID,
		Name:        e.Name,
		Description: e.Description,
		URL:         nullString(e.URL),
		Price:       nullString(e.Price),
		Currency:    nullString(e.Currency),
		ImageURL:    nullString(e.ImageURL),
		IsPublic:    e.IsPublic,
		Status:      modelwish.Status(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Priority.Valid {
		p := int(e.Priority.Int32)
		w.Priority = &p
	}
	if len(e.Metadata) > 0 {
		var md modelwish.Metadata
		if err := json.Unmarshal(e.Metadata, &md); err == nil && len(md) > 0 {
			w.Metadata = md
		}
	}
	return w
}

// ImagePostgresEntry is a row of the wishes_images table.
type ImagePostgresEntry struct {
	ID              int64  `db:"id"`
	WishID          int64  `db:"wish_id"`
	StorageObjectID string `db:"storage_object_id"`
}

// ReservationPostgresEntry is a row of the reservations table joined with the reserver name.
type ReservationPostgresEntry struct {
	ID           int64          `db:"id"`
	WishID       int64          `db:"wish_id"`
	UserID       string         `db:"user_id"`
	CreatedAt    time.Time      `db:"created_at"`
	ReserverName sql.NullString `db:"reserver_name"`
}

// ToReservationInfo converts a row into the service representation.
func (e ReservationPostgresEntry) ToReservationInfo() modelwish.ReservationInfo {
	return modelwish.ReservationInfo{
		Reservation: modelwish.Reservation{
			ID:        e.ID,
			WishID:    e.WishID,
			UserID:    e.UserID,
			CreatedAt: e.CreatedAt,
		},
		ReserverName: nullString(e.ReserverName),
	}
}

// UserPostgresEntry is a row of the users table.
type UserPostgresEntry struct {
	ID           string         `db:"id"`
	Slug         string         `db:"slug"`
	DisplayName  sql.NullString `db:"display_name"`
	ContactName  sql.NullString `db:"contact_name"`
	ContactEmail sql.NullString `db:"contact_email"`
	Currency     sql.NullString `db:"currency"`
	Country      sql.NullString `db:"country"`
	CreatedAt    time.Time      `db:"created_at"`
}

// ToUser converts a row into the service representation.
func (e UserPostgresEntry) ToUser() modelaccount.User {
	return modelaccount.User{
		ID:           e.ID,
		Slug:         e.Slug,
		DisplayName:  nullString(e.DisplayName),
		ContactName:  nullString(e.ContactName),
		ContactEmail: nullString(e.ContactEmail),
		Currency:     nullString(e.Currency),
		Country:      nullString(e.Country),
		CreatedAt:    e.CreatedAt,
	}
}

// ExtrasFileEntry is the on-disk layout of the file-backed extras store.
type ExtrasFileEntry map[string]modelwish.WishFields

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
