package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
)

func strPtr(s string) *string { return &s }

func TestMerge_ServerFieldsWin(t *testing.T) {
	row := modelwish.Wish{
		ID:     1,
		Name:   "Server name",
		Price:  strPtr("10.00"),
		Status: modelwish.StatusAvailable,
	}
	extras := modelwish.WishFields{
		Name:        strPtr("Local name"),
		Price:       strPtr("99.00"),
		URL:         strPtr("https://local.example"),
		NotePrivate: strPtr("for me"),
		Tags:        []string{"book"},
	}
	v := Merge(row, extras)
	assert.Equal(t, "Server name", v.Name)
	assert.Equal(t, "10.00", *v.Price)
	// url is server modeled, so the unset server value wins
	assert.Nil(t, v.URL)
	assert.Equal(t, "for me", *v.NotePrivate)
	assert.Equal(t, []string{"book"}, v.Tags)
}

func TestMerge_Metadata(t *testing.T) {
	tests := []struct {
		name   string
		server modelwish.Metadata
		extras modelwish.Metadata
		want   modelwish.Metadata
	}{
		{
			name:   "server key wins",
			server: modelwish.Metadata{"title": "server"},
			extras: modelwish.Metadata{"title": "local", "favicon": "https://x/icon.png"},
			want:   modelwish.Metadata{"title": "server", "favicon": "https://x/icon.png"},
		},
		{
			name:   "extras only",
			extras: modelwish.Metadata{"siteName": "Shop"},
			want:   modelwish.Metadata{"siteName": "Shop"},
		},
		{
			name: "both empty",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Merge(modelwish.Wish{ID: 2, Metadata: tt.server}, modelwish.WishFields{Metadata: tt.extras})
			assert.Equal(t, tt.want, v.Metadata)
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	row := modelwish.Wish{
		ID:       3,
		Name:     "Kettle",
		Currency: strPtr("EUR"),
		Metadata: modelwish.Metadata{"title": "Kettle 2000"},
		Images:   []modelwish.WishImage{{ID: 1, WishID: 3, StorageObjectID: "3/a.jpg"}},
	}
	extras := modelwish.WishFields{
		NotePrivate: strPtr("ask for blue"),
		Tags:        []string{"kitchen", "gift"},
		Metadata:    modelwish.Metadata{"siteName": "Shop"},
	}
	once := Merge(row, extras)
	twice := Merge(once.Wish, once.Extras())
	assert.Equal(t, once, twice)

	// server fields survive a merge with an empty overlay
	bare := Merge(once.Wish, modelwish.WishFields{})
	assert.Equal(t, once.Wish, bare.Wish)
}

func TestMerge_DoesNotAlias(t *testing.T) {
	extras := modelwish.WishFields{Tags: []string{"a"}, Metadata: modelwish.Metadata{"k": "v"}}
	v := Merge(modelwish.Wish{ID: 4}, extras)
	v.Tags[0] = "changed"
	v.Metadata["k"] = "changed"
	assert.Equal(t, "a", extras.Tags[0])
	assert.Equal(t, "v", extras.Metadata["k"])
}

func TestMergeAll(t *testing.T) {
	rows := []modelwish.Wish{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	notes := map[int64]modelwish.WishFields{2: {NotePrivate: strPtr("second")}}
	views := MergeAll(rows, func(id int64) modelwish.WishFields { return notes[id] })
	assert.Len(t, views, 2)
	assert.Nil(t, views[0].NotePrivate)
	assert.Equal(t, "second", *views[1].NotePrivate)
}
