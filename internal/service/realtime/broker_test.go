package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
)

func TestBroker_PublishSubscribe(t *testing.T) {
	b := InitBroker(logrus.New())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := b.Subscribe(ctx, "owner")
	other := b.Subscribe(ctx, "someone-else")

	b.Publish("owner", modelwish.Event{Type: modelwish.EventCreated, WishID: 1})

	select {
	case e := <-events:
		assert.Equal(t, modelwish.EventCreated, e.Type)
		assert.Equal(t, int64(1), e.WishID)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
	assert.Len(t, other, 0)
}

func TestBroker_DropsWhenFull(t *testing.T) {
	b := InitBroker(logrus.New())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := b.Subscribe(ctx, "owner")
	for i := 0; i < BufferSize+5; i++ {
		b.Publish("owner", modelwish.Event{Type: modelwish.EventUpdated, WishID: int64(i)})
	}
	assert.Len(t, events, BufferSize)
}

func TestBroker_UnsubscribeOnCancel(t *testing.T) {
	b := InitBroker(logrus.New())
	ctx, cancel := context.WithCancel(context.Background())
	events := b.Subscribe(ctx, "owner")
	require.Equal(t, 1, b.Subscribers("owner"))
	cancel()
	_, open := <-events
	assert.False(t, open)
	assert.Equal(t, 0, b.Subscribers("owner"))
}

func TestBroker_Close(t *testing.T) {
	b := InitBroker(logrus.New())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	first := b.Subscribe(ctx, "owner")
	second := b.Subscribe(ctx, "other")

	b.Close()
	b.Close()
	_, open := <-first
	assert.False(t, open)
	_, open = <-second
	assert.False(t, open)
	assert.Equal(t, 0, b.Subscribers("owner"))

	late := b.Subscribe(ctx, "owner")
	_, open = <-late
	assert.False(t, open)
	b.Publish("owner", modelwish.Event{Type: modelwish.EventCreated, WishID: 1})
}
