package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
)

func TestStorage(t *testing.T) {
	st := InitStorage()
	ctx := context.Background()

	assert.True(t, st.Get(ctx, "7").IsEmpty())
	require.NoError(t, st.Set(ctx, "7", modelwish.WishFields{Tags: []string{"x"}}))
	assert.Equal(t, []string{"x"}, st.Get(ctx, "7").Tags)
	require.NoError(t, st.Remove(ctx, "7"))
	assert.True(t, st.Get(ctx, "7").IsEmpty())
}
