// Package inredis provides an extras store kept in Redis, one key per wish.
package inredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
)

// Check interface implementation explicitly
var (
	_ storage.ExtrasStore = (*Storage)(nil)
)

// KeyPrefix namespaces extras entries.
const KeyPrefix = "wishExtras:"

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	Client *redis.Client
	log    *logrus.Logger
}

// InitStorage connects to addr and starts a listener closing the client on ctx cancellation.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, addr string, log *logrus.Logger) (*Storage, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	st := NewStorage(client, log)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.Client.Close(); err != nil {
			log.Error(err)
			return
		}
		log.Info("Redis extras store closed successfully")
	}()
	return st, nil
}

// NewStorage wraps an existing client.
func NewStorage(client *redis.Client, log *logrus.Logger) *Storage {
	return &Storage{Client: client, log: log}
}

// Get returns the entry for id or an empty record.
func (s *Storage) Get(ctx context.Context, id string) modelwish.WishFields {
	payload, err := s.Client.Get(ctx, KeyPrefix+id).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.WithField("id", id).Warn(err)
		}
		return modelwish.WishFields{}
	}
	var fields modelwish.WishFields
	if err := json.Unmarshal(payload, &fields); err != nil {
		s.log.WithField("id", id).Warn("extras entry is malformed, treating as empty")
		return modelwish.WishFields{}
	}
	return fields
}

// Set replaces the entry for id.
func (s *Storage) Set(ctx context.Context, id string, fields modelwish.WishFields) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, KeyPrefix+id, payload, 0).Err()
}

// Remove deletes the entry for id.
func (s *Storage) Remove(ctx context.Context, id string) error {
	return s.Client.Del(ctx, KeyPrefix+id).Err()
}
