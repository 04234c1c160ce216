// Package modelwish provides locally used types and their structure for wish handling between modules.
package modelwish

import "time"

// Status is the owner-managed lifecycle state of a wish.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusReceived  Status = "received"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusAvailable, StatusReserved, StatusReceived, StatusArchived:
		return true
	}
	return false
}

// Metadata holds link-preview data (siteName, favicon, title and any other key).
type Metadata map[string]string

// Wish is a server-owned wish row.
type Wish struct {
	ID          int64       `json:"id"`
	UserID      string      `json:"user_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	URL         *string     `json:"url"`
	Price       *string     `json:"price"`
	Currency    *string     `json:"currency"`
	ImageURL    *string     `json:"image_url"`
	Images      []WishImage `json:"images"`
	Priority    *int        `json:"priority"`
	IsPublic    bool        `json:"is_public"`
	Status      Status      `json:"status"`
	Metadata    Metadata    `json:"metadata,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// WishImage is one entry of a wish gallery.
type WishImage struct {
	ID              int64  `json:"id"`
	WishID          int64  `json:"wish_id"`
	StorageObjectID string `json:"storage_object_id"`
	URL             string `json:"url"`
}

// WishFields is a partial wish record: the payload submitted on create and update
// and, verbatim, the entry kept in the local extras store.
type WishFields struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	URL         *string  `json:"url,omitempty" validate:"omitempty,url"`
	Price       *string  `json:"price,omitempty" validate:"omitempty,numeric"`
	Currency    *string  `json:"currency,omitempty" validate:"omitempty,iso4217"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Priority    *int     `json:"priority,omitempty" validate:"omitempty,min=1,max=3"`
	IsPublic    *bool    `json:"is_public,omitempty"`
	Status      *Status  `json:"status,omitempty" validate:"omitempty,oneof=draft available reserved received archived"`
	NotePrivate *string  `json:"note_private,omitempty" validate:"omitempty,max=2000"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

// IsEmpty reports whether no field is set.
func (f WishFields) IsEmpty() bool {
	return f.Name == nil && f.Description == nil && f.URL == nil && f.Price == nil &&
		f.Currency == nil && f.ImageURL == nil && f.Priority == nil && f.IsPublic == nil &&
		f.Status == nil && f.NotePrivate == nil && len(f.Tags) == 0 && len(f.Metadata) == 0
}

// Apply copies the server-modeled fields present in f onto w, metadata included.
func (f WishFields) Apply(w *Wish) {
	if f.Name != nil {
		w.Name = *f.Name
	}
	if f.Description != nil {
		w.Description = *f.Description
	}
	if f.URL != nil {
		w.URL = f.URL
	}
	if f.Price != nil {
		w.Price = f.Price
	}
	if f.Currency != nil {
		w.Currency = f.Currency
	}
	if f.ImageURL != nil {
		w.ImageURL = f.ImageURL
	}
	if f.Priority != nil {
		w.Priority = f.Priority
	}
	if f.IsPublic != nil {
		w.IsPublic = *f.IsPublic
	}
	if f.Status != nil {
		w.Status = *f.Status
	}
	if f.Metadata != nil {
		w.Metadata = f.Metadata
	}
}

// WishView is a server row merged with its local extras.
type WishView struct {
	Wish
	NotePrivate *string  `json:"note_private,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Extras returns the extras-only overlay carried by the view.
func (v WishView) Extras() WishFields {
	return WishFields{NotePrivate: v.NotePrivate, Tags: v.Tags}
}

// SortField enumerates the columns a wish list can be ordered by.
type SortField string

const (
	SortCreatedAt SortField = "created_at"
	SortUpdatedAt SortField = "updated_at"
	SortName      SortField = "name"
	SortPrice     SortField = "price"
)

// ListParams narrows a wish listing.
type ListParams struct {
	Status   *Status
	IsPublic *bool
	Sort     SortField
	Desc     bool
	Limit    int
	Offset   int
	// Exclude hides ids that are pending deletion.
	Exclude []int64
}

// ListResult is one page of a wish listing.
type ListResult struct {
	Data  []WishView `json:"data"`
	Total int        `json:"total"`
}

// Reservation associates a reserving user with a wish.
type Reservation struct {
	ID        int64     `json:"id"`
	WishID    int64     `json:"wish_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ReservationInfo is a reservation joined with the reserver display name.
type ReservationInfo struct {
	Reservation
	ReserverName *string
}

// PublicWish is the read-only representation of a wish on a shared list.
// Reservation fields stay zero when the viewer owns the list.
type PublicWish struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	URL            *string     `json:"url"`
	Price          *string     `json:"price"`
	Currency       *string     `json:"currency"`
	ImageURL       *string     `json:"image_url"`
	Images         []WishImage `json:"images"`
	Priority       *int        `json:"priority"`
	Reserved       bool        `json:"reserved,omitempty"`
	ReservedByMe   bool        `json:"reserved_by_me,omitempty"`
	ReservedByName *string     `json:"reserved_by_name,omitempty"`
}

// NewPublicWish strips a server row down to its public fields.
func NewPublicWish(w Wish) PublicWish {
	return PublicWish{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		URL:         w.URL,
		Price:       w.Price,
		Currency:    w.Currency,
		ImageURL:    w.ImageURL,
		Images:      w.Images,
		Priority:    w.Priority,
	}
}

// PublicList is the shared wishlist of one slug.
type PublicList struct {
	Slug      string       `json:"slug"`
	Title     *string      `json:"title"`
	IsOwner   bool         `json:"is_owner"`
	Remaining *int         `json:"remaining,omitempty"`
	Wishes    []PublicWish `json:"wishes"`
}

// Event is a realtime change notification for one owner.
type Event struct {
	Type   EventType `json:"type"`
	WishID int64     `json:"wish_id"`
	Wish   *WishView `json:"wish,omitempty"`
}

// EventType enumerates realtime change kinds.
type EventType string

const (
	EventCreated  EventType = "created"
	EventUpdated  EventType = "updated"
	EventDeleted  EventType = "deleted"
	EventRestored EventType = "restored"
)
