// Package merger combines server wish rows with locally kept extras.
package merger

import (
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
)

// Merge overlays row onto extras. Every server-modeled field is taken from row,
// including unset ones, extras contribute only the fields the server does not model.
// Metadata is merged key by key with row keys winning.
func Merge(row modelwish.Wish, extras modelwish.WishFields) modelwish.WishView {
	view := modelwish.WishView{
		Wish:        row,
		NotePrivate: extras.NotePrivate,
		Tags:        copyTags(extras.Tags),
	}
	view.Images = copyImages(row.Images)
	view.Metadata = mergeMetadata(extras.Metadata, row.Metadata)
	return view
}

// MergeAll merges every row with the extras returned by lookup for its id.
func MergeAll(rows []modelwish.Wish, lookup func(id int64) modelwish.WishFields) []modelwish.WishView {
	views := make([]modelwish.WishView, 0, len(rows))
	for _, row := range rows {
		views = append(views, Merge(row, lookup(row.ID)))
	}
	return views
}

func mergeMetadata(base, overlay modelwish.Metadata) modelwish.Metadata {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}
	merged := make(modelwish.Metadata, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}

func copyTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	return append([]string(nil), tags...)
}

func copyImages(images []modelwish.WishImage) []modelwish.WishImage {
	if images == nil {
		return nil
	}
	return append([]modelwish.WishImage{}, images...)
}
