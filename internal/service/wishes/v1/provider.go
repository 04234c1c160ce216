// Package wishes provides the owner-facing wish provider merging server rows with local extras.
package wishes

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	serviceErrors "github.com/danilovkiri/dk_go_wishlist/internal/service/errors"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/merger"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/realtime"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/wishes"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
)

// Check interface implementation explicitly
var (
	_ wishes.Provider = (*Provider)(nil)
)

// commitTimeout bounds the storage calls of a delayed deletion.
const commitTimeout = 5 * time.Second

type pendingDelete struct {
	owner   string
	objects []string
	timer   *time.Timer
}

// Provider struct defines data structure handling and provides support for adding new implementations.
type Provider struct {
	WishStorage storage.WishStorage
	Extras      storage.ExtrasStore
	Bucket      storage.Bucket
	broker      *realtime.Broker
	validate    *validator.Validate
	grace       time.Duration
	log         *logrus.Logger

	mu      sync.Mutex
	pending map[int64]*pendingDelete
}

// InitProvider initializes a Provider object and sets its attributes.
// A zero grace period deletes immediately.
func InitProvider(st storage.WishStorage, extras storage.ExtrasStore, bucket storage.Bucket, broker *realtime.Broker, grace time.Duration, log *logrus.Logger) (*Provider, error) {
	if st == nil || extras == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	if broker == nil {
		broker = realtime.InitBroker(log)
	}
	return &Provider{
		WishStorage: st,
		Extras:      extras,
		Bucket:      bucket,
		broker:      broker,
		validate:    validator.New(),
		grace:       grace,
		log:         log,
		pending:     make(map[int64]*pendingDelete),
	}, nil
}

// List returns one page of the owner's wishes, each merged with its extras.
func (p *Provider) List(ctx context.Context, owner string, params modelwish.ListParams) (modelwish.ListResult, error) {
	params.Exclude = append(params.Exclude, p.pendingIDs(owner)...)
	rows, total, err := p.WishStorage.ListWishes(ctx, owner, params)
	if err != nil {
		return modelwish.ListResult{}, err
	}
	views := merger.MergeAll(rows, func(id int64) modelwish.WishFields {
		return p.Extras.Get(ctx, key(id))
	})
	for i := range views {
		p.attachURLs(&views[i])
	}
	return modelwish.ListResult{Data: views, Total: total}, nil
}

// GetOne returns one wish of the owner merged with its extras.
func (p *Provider) GetOne(ctx context.Context, owner string, id int64) (modelwish.WishView, error) {
	if p.isPending(id) {
		return modelwish.WishView{}, &storageErrors.NotFoundError{Entity: "wish", ID: key(id)}
	}
	row, err := p.WishStorage.GetWish(ctx, owner, id)
	if err != nil {
		return modelwish.WishView{}, err
	}
	view := merger.Merge(row, p.Extras.Get(ctx, key(id)))
	p.attachURLs(&view)
	return view, nil
}

// Create persists the server fields of a new wish and mirrors the whole payload into the extras store.
func (p *Provider) Create(ctx context.Context, owner string, fields modelwish.WishFields) (modelwish.WishView, error) {
	if fields.Name == nil || *fields.Name == "" {
		return modelwish.WishView{}, &serviceErrors.ServiceIncorrectInput{Msg: "name is required"}
	}
	if err := p.validate.Struct(fields); err != nil {
		return modelwish.WishView{}, &serviceErrors.ServiceIncorrectInput{Msg: "invalid wish", Err: err}
	}
	wish := modelwish.Wish{UserID: owner, Status: modelwish.StatusAvailable}
	fields.Apply(&wish)
	created, err := p.WishStorage.CreateWish(ctx, wish)
	if err != nil {
		return modelwish.WishView{}, err
	}
	p.setExtras(ctx, created.ID, fields)
	view := merger.Merge(created, fields)
	p.broker.Publish(owner, modelwish.Event{Type: modelwish.EventCreated, WishID: view.ID, Wish: &view})
	return view, nil
}

// Update applies the server fields present in the payload and overwrites the extras entry with it.
func (p *Provider) Update(ctx context.Context, owner string, id int64, fields modelwish.WishFields) (modelwish.WishView, error) {
	if fields.IsEmpty() {
		return modelwish.WishView{}, &serviceErrors.ServiceIncorrectInput{Msg: "empty update"}
	}
	if fields.Name != nil && *fields.Name == "" {
		return modelwish.WishView{}, &serviceErrors.ServiceIncorrectInput{Msg: "name must not be empty"}
	}
	if err := p.validate.Struct(fields); err != nil {
		return modelwish.WishView{}, &serviceErrors.ServiceIncorrectInput{Msg: "invalid wish", Err: err}
	}
	if p.isPending(id) {
		return modelwish.WishView{}, &storageErrors.NotFoundError{Entity: "wish", ID: key(id)}
	}
	wish, err := p.WishStorage.GetWish(ctx, owner, id)
	if err != nil {
		return modelwish.WishView{}, err
	}
	fields.Apply(&wish)
	updated, err := p.WishStorage.UpdateWish(ctx, wish)
	if err != nil {
		return modelwish.WishView{}, err
	}
	p.setExtras(ctx, id, fields)
	view := merger.Merge(updated, fields)
	p.attachURLs(&view)
	p.broker.Publish(owner, modelwish.Event{Type: modelwish.EventUpdated, WishID: id, Wish: &view})
	return view, nil
}

// Delete hides the wish and removes it once the grace period elapses without an Undo.
func (p *Provider) Delete(ctx context.Context, owner string, id int64) error {
	if p.isPending(id) {
		return &storageErrors.NotFoundError{Entity: "wish", ID: key(id)}
	}
	wish, err := p.WishStorage.GetWish(ctx, owner, id)
	if err != nil {
		return err
	}
	objects := make([]string, 0, len(wish.Images))
	for _, img := range wish.Images {
		objects = append(objects, img.StorageObjectID)
	}
	if p.grace <= 0 {
		if err := p.commit(ctx, id, owner, objects); err != nil {
			return err
		}
		p.broker.Publish(owner, modelwish.Event{Type: modelwish.EventDeleted, WishID: id})
		return nil
	}

	pd := &pendingDelete{owner: owner, objects: objects}
	p.mu.Lock()
	p.pending[id] = pd
	pd.timer = time.AfterFunc(p.grace, func() { p.fire(id, pd) })
	p.mu.Unlock()
	p.log.WithField("wish_id", id).Debug("wish deletion scheduled")
	p.broker.Publish(owner, modelwish.Event{Type: modelwish.EventDeleted, WishID: id})
	return nil
}

// Undo cancels a pending deletion and returns the restored wish.
func (p *Provider) Undo(ctx context.Context, owner string, id int64) (modelwish.WishView, error) {
	p.mu.Lock()
	pd, ok := p.pending[id]
	if !ok || pd.owner != owner {
		p.mu.Unlock()
		return modelwish.WishView{}, &serviceErrors.ServiceNotPending{WishID: id}
	}
	delete(p.pending, id)
	pd.timer.Stop()
	p.mu.Unlock()

	view, err := p.GetOne(ctx, owner, id)
	if err != nil {
		return modelwish.WishView{}, err
	}
	p.broker.Publish(owner, modelwish.Event{Type: modelwish.EventRestored, WishID: id, Wish: &view})
	return view, nil
}

// Subscribe streams the owner's wish events until ctx ends.
func (p *Provider) Subscribe(ctx context.Context, owner string) <-chan modelwish.Event {
	return p.broker.Subscribe(ctx, owner)
}

// CloseEvents ends every open event subscription.
func (p *Provider) CloseEvents() {
	p.broker.Close()
}

// Shutdown commits every pending deletion immediately. The commits get their own
// commitTimeout and outlive the cancellation of ctx.
func (p *Provider) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commitTimeout)
	defer cancel()

	p.mu.Lock()
	pending := p.pending
	p.pending = make(map[int64]*pendingDelete)
	p.mu.Unlock()

	var firstErr error
	for id, pd := range pending {
		pd.timer.Stop()
		if err := p.commit(ctx, id, pd.owner, pd.objects); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if len(pending) > 0 {
		p.log.Infof("committed %d pending wish deletions", len(pending))
	}
	return firstErr
}

// fire runs on the timer goroutine unless Undo or Shutdown claimed the entry first.
func (p *Provider) fire(id int64, pd *pendingDelete) {
	p.mu.Lock()
	if p.pending[id] != pd {
		p.mu.Unlock()
		return
	}
	delete(p.pending, id)
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
	defer cancel()
	if err := p.commit(ctx, id, pd.owner, pd.objects); err != nil {
		p.log.WithField("wish_id", id).Error(err)
	}
}

// commit removes the server row, the image objects and the extras entry.
func (p *Provider) commit(ctx context.Context, id int64, owner string, objects []string) error {
	if err := p.WishStorage.DeleteWish(ctx, owner, id); err != nil {
		return err
	}
	if p.Bucket != nil && len(objects) > 0 {
		if err := p.Bucket.Remove(ctx, objects...); err != nil {
			p.log.WithField("wish_id", id).Warn(err)
		}
	}
	if err := p.Extras.Remove(ctx, key(id)); err != nil {
		p.log.WithField("wish_id", id).Warn(err)
	}
	p.log.WithField("wish_id", id).Info("wish deleted")
	return nil
}

func (p *Provider) setExtras(ctx context.Context, id int64, fields modelwish.WishFields) {
	if err := p.Extras.Set(ctx, key(id), fields); err != nil {
		p.log.WithField("wish_id", id).Warn(err)
	}
}

// attachURLs fills the public address of every gallery image.
func (p *Provider) attachURLs(v *modelwish.WishView) {
	if p.Bucket == nil {
		return
	}
	for i := range v.Images {
		v.Images[i].URL = p.Bucket.PublicURL(v.Images[i].StorageObjectID)
	}
}

func (p *Provider) isPending(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.pending[id]
	return ok
}

func (p *Provider) pendingIDs(owner string) []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	var ids []int64
	for id, pd := range p.pending {
		if pd.owner == owner {
			ids = append(ids, id)
		}
	}
	return ids
}

func key(id int64) string {
	return strconv.FormatInt(id, 10)
}
