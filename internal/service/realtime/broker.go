// Package realtime fans wish change events out to the subscribers of one owner.
package realtime

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
)

// BufferSize is the number of events a subscriber may lag behind before losing events.
const BufferSize = 16

type subscriber struct {
	ch chan modelwish.Event
}

// Broker keeps subscribers per owner.
type Broker struct {
	mu     sync.Mutex
	subs   map[string]map[*subscriber]struct{}
	closed bool
	done   chan struct{}
	log    *logrus.Logger
}

// InitBroker initializes a Broker object.
func InitBroker(log *logrus.Logger) *Broker {
	return &Broker{
		subs: make(map[string]map[*subscriber]struct{}),
		done: make(chan struct{}),
		log:  log,
	}
}

// Subscribe registers a subscriber for owner until ctx ends or the broker is closed,
// the returned channel is closed then.
func (b *Broker) Subscribe(ctx context.Context, owner string) <-chan modelwish.Event {
	sub := &subscriber{ch: make(chan modelwish.Event, BufferSize)}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch
	}
	if b.subs[owner] == nil {
		b.subs[owner] = make(map[*subscriber]struct{})
	}
	b.subs[owner][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
		}
		b.unsubscribe(owner, sub)
	}()
	return sub.ch
}

// Close ends every subscription, later subscriptions are closed right away.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	n := 0
	for owner, subs := range b.subs {
		for sub := range subs {
			close(sub.ch)
			n++
		}
		delete(b.subs, owner)
	}
	b.log.Infof("closed %d event subscriptions", n)
}

func (b *Broker) unsubscribe(owner string, sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[owner][sub]; !ok {
		return
	}
	delete(b.subs[owner], sub)
	if len(b.subs[owner]) == 0 {
		delete(b.subs, owner)
	}
	close(sub.ch)
}

// Publish delivers event to every subscriber of owner without blocking.
func (b *Broker) Publish(owner string, event modelwish.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs[owner] {
		select {
		case sub.ch <- event:
		default:
			b.log.WithField("wish_id", event.WishID).Warn("subscriber is lagging, event dropped")
		}
	}
}

// Subscribers returns the number of live subscribers of owner.
func (b *Broker) Subscribers(owner string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[owner])
}
