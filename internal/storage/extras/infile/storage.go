// Package infile provides an extras store persisted as a single JSON document.
package infile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"sync"

	"github.com/hack-pad/hackpadfs"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.ExtrasStore = (*Storage)(nil)
)

// Storage keeps every extras entry in one JSON object mapping wish id to fields.
// The document is parsed once and served from memory afterwards.
type Storage struct {
	mu      sync.Mutex
	fs      hackpadfs.FS
	name    string
	log     *logrus.Logger
	entries modelstorage.ExtrasFileEntry
}

// InitStorage initializes a Storage object writing to name inside fsys.
func InitStorage(fsys hackpadfs.FS, name string, log *logrus.Logger) *Storage {
	return &Storage{
		fs:   fsys,
		name: name,
		log:  log,
	}
}

// Get returns the entry for id or an empty record.
func (s *Storage) Get(_ context.Context, id string) modelwish.WishFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()[id]
}

// Set replaces the entry for id and rewrites the file.
func (s *Storage) Set(_ context.Context, id string, fields modelwish.WishFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.load()
	entries[id] = fields
	return s.dump()
}

// Remove deletes the entry for id, absent ids are ignored.
func (s *Storage) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.load()
	if _, ok := entries[id]; !ok {
		return nil
	}
	delete(entries, id)
	return s.dump()
}

// load returns the cached document, reading it on first use.
// A missing or malformed file reads as empty.
func (s *Storage) load() modelstorage.ExtrasFileEntry {
	if s.entries != nil {
		return s.entries
	}
	s.entries = make(modelstorage.ExtrasFileEntry)
	data, err := hackpadfs.ReadFile(s.fs, s.name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.WithField("file", s.name).Warn(err)
		}
		return s.entries
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		s.log.WithField("file", s.name).Warn("extras file is malformed, treating as empty")
		s.entries = make(modelstorage.ExtrasFileEntry)
	}
	return s.entries
}

// dump writes the cached document, a failed write drops the cache so the file stays authoritative.
func (s *Storage) dump() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		s.entries = nil
		return &storageErrors.FileWriteError{Path: s.name, Err: err}
	}
	if err := hackpadfs.WriteFullFile(s.fs, s.name, data, 0o644); err != nil {
		s.entries = nil
		return &storageErrors.FileWriteError{Path: s.name, Err: err}
	}
	return nil
}
