// Package reserver provides interfaces for types to be in compliance with.
package reserver

import (
	"context"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
)

// Contact is the optional identity a reserver leaves on their profile, apart from the title of their own list.
type Contact struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// Reserver defines a set of methods for types serving shared lists.
type Reserver interface {
	PublicList(ctx context.Context, slug, viewerID string) (modelwish.PublicList, error)
	Reserve(ctx context.Context, slug string, wishID int64, viewerID string, contact Contact) (modelwish.Reservation, error)
	CancelReservation(ctx context.Context, slug string, wishID int64, viewerID string) error
	MyReservations(ctx context.Context, userID string) ([]modelwish.Reservation, error)
}
