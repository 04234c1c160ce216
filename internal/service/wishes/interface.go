// Package wishes provides interfaces for types to be in compliance with.
package wishes

import (
	"context"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
)

// Provider defines a set of methods for types serving the wishes of one owner.
type Provider interface {
	List(ctx context.Context, owner string, params modelwish.ListParams) (modelwish.ListResult, error)
	GetOne(ctx context.Context, owner string, id int64) (modelwish.WishView, error)
	Create(ctx context.Context, owner string, fields modelwish.WishFields) (modelwish.WishView, error)
	Update(ctx context.Context, owner string, id int64, fields modelwish.WishFields) (modelwish.WishView, error)
	Delete(ctx context.Context, owner string, id int64) error
	Undo(ctx context.Context, owner string, id int64) (modelwish.WishView, error)
	Subscribe(ctx context.Context, owner string) <-chan modelwish.Event
}
