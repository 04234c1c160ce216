// Package inmemory provides a process-local extras store.
package inmemory

import (
	"context"
	"sync"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
)

// Check interface implementation explicitly
var (
	_ storage.ExtrasStore = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu sync.RWMutex
	DB map[string]modelwish.WishFields
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage() *Storage {
	return &Storage{
		DB: make(map[string]modelwish.WishFields),
	}
}

// Get returns the entry for id or an empty record.
func (s *Storage) Get(_ context.Context, id string) modelwish.WishFields {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.DB[id]
}

// Set replaces the entry for id.
func (s *Storage) Set(_ context.Context, id string, fields modelwish.WishFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DB[id] = fields
	return nil
}

// Remove deletes the entry for id.
func (s *Storage) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.DB, id)
	return nil
}
