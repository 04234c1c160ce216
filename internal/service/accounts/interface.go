// Package accounts provides interfaces for types to be in compliance with.
package accounts

import (
	"context"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
)

// Manager defines a set of methods for types managing user accounts.
type Manager interface {
	SignInAnonymously(ctx context.Context) (modelaccount.User, error)
	GetProfile(ctx context.Context, userID string) (modelaccount.User, error)
	UpdateProfile(ctx context.Context, userID string, fields modelaccount.ProfileFields) (modelaccount.User, error)
}
