// Package insqlite provides an extras store kept in an embedded SQLite database.
package insqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
)

// Check interface implementation explicitly
var (
	_ storage.ExtrasStore = (*Storage)(nil)
)

const schema = `CREATE TABLE IF NOT EXISTS wish_extras (
	id TEXT PRIMARY KEY,
	payload TEXT NOT NULL
)`

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	DB  *sql.DB
	log *logrus.Logger
}

// InitStorage opens the database file at path, creates the table and starts a listener closing the DB on ctx cancellation.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, path string, log *logrus.Logger) (*Storage, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// a single connection keeps writes serialized
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	st := Storage{
		DB:  db,
		log: log,
	}
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.DB.Close(); err != nil {
			log.Error(err)
			return
		}
		log.Info("SQLite extras store closed successfully")
	}()
	return &st, nil
}

// Get returns the entry for id or an empty record.
func (s *Storage) Get(ctx context.Context, id string) modelwish.WishFields {
	var payload string
	err := s.DB.QueryRowContext(ctx, "SELECT payload FROM wish_extras WHERE id = ?", id).Scan(&payload)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.WithField("id", id).Warn(err)
		}
		return modelwish.WishFields{}
	}
	var fields modelwish.WishFields
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
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
	_, err = s.DB.ExecContext(ctx,
		"INSERT INTO wish_extras (id, payload) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET payload = excluded.payload",
		id, string(payload))
	if err != nil {
		return &storageErrors.ExecutionSQLiteError{Err: err}
	}
	return nil
}

// Remove deletes the entry for id.
func (s *Storage) Remove(ctx context.Context, id string) error {
	if _, err := s.DB.ExecContext(ctx, "DELETE FROM wish_extras WHERE id = ?", id); err != nil {
		return &storageErrors.ExecutionSQLiteError{Err: err}
	}
	return nil
}
