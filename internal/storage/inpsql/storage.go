// Package inpsql provides functionality for keeping wishes, reservations and users in a PSQL DB.
package inpsql

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/config"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage/modelstorage"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Check interface implementation explicitly
var (
	_ storage.Storage = (*Storage)(nil)
)

const wishColumns = `id, user_id, name, description, url, price::text AS price, currency, image_url,
	priority, is_public, status, COALESCE(metadata, '{}'::jsonb) AS metadata, created_at, updated_at`

var sortColumns = map[modelwish.SortField]string{
	modelwish.SortCreatedAt: "created_at",
	modelwish.SortUpdatedAt: "updated_at",
	modelwish.SortName:      "lower(name)",
	modelwish.SortPrice:     "price",
}

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	Cfg *config.Config
	DB  *sqlx.DB
	log *logrus.Logger
}

// InitStorage initializes a Storage object, runs migrations and starts a listener closing the DB on ctx cancellation.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config, log *logrus.Logger) (*Storage, error) {
	db, err := sqlx.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	st := Storage{
		Cfg: cfg,
		DB:  db,
		log: log,
	}
	if err := st.migrate(); err != nil {
		return nil, err
	}
	// close the DB once ctx is cancelled,
	// use sync.WaitGroup to prevent goroutine premature termination when main exits
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.DB.Close(); err != nil {
			log.Error(err)
			return
		}
		log.Info("PSQL DB connection closed successfully")
	}()
	return &st, nil
}

// migrate applies the embedded schema migrations.
func (s *Storage) migrate() error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}
	driver, err := postgres.WithInstance(s.DB.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	s.log.Info("Database migrations completed successfully")
	return nil
}

// ListWishes returns one page of the wishes owned by userID.
func (s *Storage) ListWishes(ctx context.Context, userID string, params modelwish.ListParams) ([]modelwish.Wish, int, error) {
	where := []string{"user_id = $1"}
	args := []interface{}{userID}
	if params.Status != nil {
		args = append(args, string(*params.Status))
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	if params.IsPublic != nil {
		args = append(args, *params.IsPublic)
		where = append(where, "is_public = $"+strconv.Itoa(len(args)))
	}
	if len(params.Exclude) > 0 {
		args = append(args, pq.Array(params.Exclude))
		where = append(where, "NOT (id = ANY($"+strconv.Itoa(len(args))+"))")
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := s.DB.GetContext(ctx, &total, "SELECT count(*) FROM wishes WHERE "+cond, args...); err != nil {
		return nil, 0, s.wrap(ctx, "ListWishes", err)
	}

	order, ok := sortColumns[params.Sort]
	if !ok {
		order = sortColumns[modelwish.SortCreatedAt]
	}
	direction := "ASC"
	if params.Desc {
		direction = "DESC"
	}
	query := fmt.Sprintf("SELECT %s FROM wishes WHERE %s ORDER BY %s %s NULLS LAST, id %s", wishColumns, cond, order, direction, direction)
	if params.Limit > 0 {
		args = append(args, params.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if params.Offset > 0 {
		args = append(args, params.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	var entries []modelstorage.WishPostgresEntry
	if err := s.DB.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, 0, s.wrap(ctx, "ListWishes", err)
	}
	wishes, err := s.toWishes(ctx, entries)
	if err != nil {
		return nil, 0, err
	}
	return wishes, total, nil
}

// GetWish returns a wish owned by userID.
func (s *Storage) GetWish(ctx context.Context, userID string, id int64) (modelwish.Wish, error) {
	query := "SELECT " + wishColumns + " FROM wishes WHERE id = $1 AND user_id = $2"
	return s.getWish(ctx, "GetWish", query, id, userID)
}

// CreateWish stores a new wish and returns it with its identifier and timestamps.
func (s *Storage) CreateWish(ctx context.Context, wish modelwish.Wish) (modelwish.Wish, error) {
	if wish.Status == "" {
		wish.Status = modelwish.StatusAvailable
	}
	metadata, err := encodeMetadata(wish.Metadata)
	if err != nil {
		return modelwish.Wish{}, err
	}
	query := `INSERT INTO wishes (user_id, name, description, url, price, currency, image_url, priority, is_public, status, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb)
		RETURNING ` + wishColumns
	var entry modelstorage.WishPostgresEntry
	err = s.DB.GetContext(ctx, &entry, query,
		wish.UserID,
		wish.Name,
		wish.Description,
		wish.URL,
		wish.Price,
		wish.Currency,
		wish.ImageURL,
		wish.Priority,
		wish.IsPublic,
		string(wish.Status),
		metadata,
	)
	if err != nil {
		return modelwish.Wish{}, s.wrap(ctx, "CreateWish", err)
	}
	return entry.ToWish(), nil
}

// UpdateWish replaces the server fields of an existing wish owned by wish.UserID.
func (s *Storage) UpdateWish(ctx context.Context, wish modelwish.Wish) (modelwish.Wish, error) {
	metadata, err := encodeMetadata(wish.Metadata)
	if err != nil {
		return modelwish.Wish{}, err
	}
	query := `UPDATE wishes SET name = $3, description = $4, url = $5, price = $6, currency = $7, image_url = $8,
		priority = $9, is_public = $10, status = $11, metadata = $12::jsonb, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + wishColumns
	var entry modelstorage.WishPostgresEntry
	err = s.DB.GetContext(ctx, &entry, query,
		wish.ID,
		wish.UserID,
		wish.Name,
		wish.Description,
		wish.URL,
		wish.Price,
		wish.Currency,
		wish.ImageURL,
		wish.Priority,
		wish.IsPublic,
		string(wish.Status),
		metadata,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return modelwish.Wish{}, &storageErrors.NotFoundError{Entity: "wish", ID: strconv.FormatInt(wish.ID, 10), Err: err}
		}
		return modelwish.Wish{}, s.wrap(ctx, "UpdateWish", err)
	}
	wishes, err := s.toWishes(ctx, []modelstorage.WishPostgresEntry{entry})
	if err != nil {
		return modelwish.Wish{}, err
	}
	return wishes[0], nil
}

// DeleteWish removes a wish, its images and its reservation cascade with it.
func (s *Storage) DeleteWish(ctx context.Context, userID string, id int64) error {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM wishes WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return s.wrap(ctx, "DeleteWish", err)
	}
	return s.expectRows(res, "wish", strconv.FormatInt(id, 10))
}

// ListPublicWishes returns the public wishes of userID ordered by creation.
func (s *Storage) ListPublicWishes(ctx context.Context, userID string) ([]modelwish.Wish, error) {
	query := "SELECT " + wishColumns + " FROM wishes WHERE user_id = $1 AND is_public ORDER BY created_at, id"
	var entries []modelstorage.WishPostgresEntry
	if err := s.DB.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, s.wrap(ctx, "ListPublicWishes", err)
	}
	return s.toWishes(ctx, entries)
}

// GetPublicWish returns a public wish of userID.
func (s *Storage) GetPublicWish(ctx context.Context, userID string, id int64) (modelwish.Wish, error) {
	query := "SELECT " + wishColumns + " FROM wishes WHERE id = $1 AND user_id = $2 AND is_public"
	return s.getWish(ctx, "GetPublicWish", query, id, userID)
}

// AddImages attaches stored objects to a wish gallery.
func (s *Storage) AddImages(ctx context.Context, wishID int64, objectIDs []string) ([]modelwish.WishImage, error) {
	query := `INSERT INTO wishes_images (wish_id, storage_object_id)
		SELECT $1, unnest($2::text[])
		RETURNING id, wish_id, storage_object_id`
	var entries []modelstorage.ImagePostgresEntry
	if err := s.DB.SelectContext(ctx, &entries, query, wishID, pq.Array(objectIDs)); err != nil {
		return nil, s.wrap(ctx, "AddImages", err)
	}
	images := make([]modelwish.WishImage, 0, len(entries))
	for _, e := range entries {
		images = append(images, modelwish.WishImage{ID: e.ID, WishID: e.WishID, StorageObjectID: e.StorageObjectID})
	}
	return images, nil
}

// GetImage returns one gallery entry of a wish.
func (s *Storage) GetImage(ctx context.Context, wishID, imageID int64) (modelwish.WishImage, error) {
	var entry modelstorage.ImagePostgresEntry
	query := "SELECT id, wish_id, storage_object_id FROM wishes_images WHERE id = $1 AND wish_id = $2"
	if err := s.DB.GetContext(ctx, &entry, query, imageID, wishID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return modelwish.WishImage{}, &storageErrors.NotFoundError{Entity: "image", ID: strconv.FormatInt(imageID, 10), Err: err}
		}
		return modelwish.WishImage{}, s.wrap(ctx, "GetImage", err)
	}
	return modelwish.WishImage{ID: entry.ID, WishID: entry.WishID, StorageObjectID: entry.StorageObjectID}, nil
}

// DeleteImages detaches gallery entries from a wish.
func (s *Storage) DeleteImages(ctx context.Context, wishID int64, imageIDs []int64) error {
	_, err := s.DB.ExecContext(ctx, "DELETE FROM wishes_images WHERE wish_id = $1 AND id = ANY($2)", wishID, pq.Array(imageIDs))
	if err != nil {
		return s.wrap(ctx, "DeleteImages", err)
	}
	return nil
}

// AddReservation reserves a wish for userID, the unique wish_id constraint rejects a second reservation.
func (s *Storage) AddReservation(ctx context.Context, wishID int64, userID string) (modelwish.Reservation, error) {
	var entry modelstorage.ReservationPostgresEntry
	query := "INSERT INTO reservations (wish_id, user_id) VALUES ($1, $2) RETURNING id, wish_id, user_id, created_at"
	if err := s.DB.GetContext(ctx, &entry, query, wishID, userID); err != nil {
		if isUniqueViolation(err) {
			return modelwish.Reservation{}, &storageErrors.AlreadyExistsError{Entity: "reservation", Key: strconv.FormatInt(wishID, 10), Err: err}
		}
		return modelwish.Reservation{}, s.wrap(ctx, "AddReservation", err)
	}
	return entry.ToReservationInfo().Reservation, nil
}

// DeleteReservation cancels the reservation userID holds on a wish.
func (s *Storage) DeleteReservation(ctx context.Context, wishID int64, userID string) error {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM reservations WHERE wish_id = $1 AND user_id = $2", wishID, userID)
	if err != nil {
		return s.wrap(ctx, "DeleteReservation", err)
	}
	return s.expectRows(res, "reservation", strconv.FormatInt(wishID, 10))
}

// ListReservationsByWishIDs returns the reservations held on the given wishes with the reserver names.
func (s *Storage) ListReservationsByWishIDs(ctx context.Context, wishIDs []int64) ([]modelwish.ReservationInfo, error) {
	query := `SELECT r.id, r.wish_id, r.user_id, r.created_at, u.contact_name AS reserver_name
		FROM reservations r LEFT JOIN users u ON u.id = r.user_id
		WHERE r.wish_id = ANY($1) ORDER BY r.id`
	var entries []modelstorage.ReservationPostgresEntry
	if err := s.DB.SelectContext(ctx, &entries, query, pq.Array(wishIDs)); err != nil {
		return nil, s.wrap(ctx, "ListReservationsByWishIDs", err)
	}
	reservations := make([]modelwish.ReservationInfo, 0, len(entries))
	for _, e := range entries {
		reservations = append(reservations, e.ToReservationInfo())
	}
	return reservations, nil
}

// ListReservationsByUserID returns the reservations made by userID.
func (s *Storage) ListReservationsByUserID(ctx context.Context, userID string) ([]modelwish.Reservation, error) {
	query := "SELECT id, wish_id, user_id, created_at FROM reservations WHERE user_id = $1 ORDER BY id"
	var entries []modelstorage.ReservationPostgresEntry
	if err := s.DB.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, s.wrap(ctx, "ListReservationsByUserID", err)
	}
	reservations := make([]modelwish.Reservation, 0, len(entries))
	for _, e := range entries {
		reservations = append(reservations, e.ToReservationInfo().Reservation)
	}
	return reservations, nil
}

// CreateUser stores a new user, failing on a slug already taken.
func (s *Storage) CreateUser(ctx context.Context, user modelaccount.User) (modelaccount.User, error) {
	query := `INSERT INTO users (id, slug, display_name, contact_name, contact_email, currency, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, slug, display_name, contact_name, contact_email, currency, country, created_at`
	var entry modelstorage.UserPostgresEntry
	err := s.DB.GetContext(ctx, &entry, query, user.ID, user.Slug, user.DisplayName, user.ContactName, user.ContactEmail, user.Currency, user.Country)
	if err != nil {
		if isUniqueViolation(err) {
			return modelaccount.User{}, &storageErrors.AlreadyExistsError{Entity: "slug", Key: user.Slug, Err: err}
		}
		return modelaccount.User{}, s.wrap(ctx, "CreateUser", err)
	}
	return entry.ToUser(), nil
}

// GetUser returns a user by identifier.
func (s *Storage) GetUser(ctx context.Context, id string) (modelaccount.User, error) {
	query := "SELECT id, slug, display_name, contact_name, contact_email, currency, country, created_at FROM users WHERE id = $1"
	return s.getUser(ctx, "GetUser", query, id)
}

// GetUserBySlug returns the user owning a public slug.
func (s *Storage) GetUserBySlug(ctx context.Context, slug string) (modelaccount.User, error) {
	query := "SELECT id, slug, display_name, contact_name, contact_email, currency, country, created_at FROM users WHERE slug = $1"
	return s.getUser(ctx, "GetUserBySlug", query, slug)
}

// UpdateUser replaces the profile fields of an existing user.
func (s *Storage) UpdateUser(ctx context.Context, user modelaccount.User) (modelaccount.User, error) {
	query := `UPDATE users SET slug = $2, display_name = $3, contact_name = $4, contact_email = $5, currency = $6, country = $7
		WHERE id = $1
		RETURNING id, slug, display_name, contact_name, contact_email, currency, country, created_at`
	var entry modelstorage.UserPostgresEntry
	err := s.DB.GetContext(ctx, &entry, query, user.ID, user.Slug, user.DisplayName, user.ContactName, user.ContactEmail, user.Currency, user.Country)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return modelaccount.User{}, &storageErrors.NotFoundError{Entity: "user", ID: user.ID, Err: err}
		case isUniqueViolation(err):
			return modelaccount.User{}, &storageErrors.AlreadyExistsError{Entity: "slug", Key: user.Slug, Err: err}
		}
		return modelaccount.User{}, s.wrap(ctx, "UpdateUser", err)
	}
	return entry.ToUser(), nil
}

// LastWishCurrency returns the currency of the most recently created wish of userID carrying one.
func (s *Storage) LastWishCurrency(ctx context.Context, userID string) (*string, error) {
	var currency string
	query := "SELECT currency FROM wishes WHERE user_id = $1 AND currency IS NOT NULL ORDER BY created_at DESC, id DESC LIMIT 1"
	if err := s.DB.GetContext(ctx, &currency, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, s.wrap(ctx, "LastWishCurrency", err)
	}
	return &currency, nil
}

// PingDB checks the PSQL DB connection.
func (s *Storage) PingDB() error {
	return s.DB.Ping()
}

// CloseDB closes the PSQL DB connection.
func (s *Storage) CloseDB() error {
	return s.DB.Close()
}

func (s *Storage) getWish(ctx context.Context, op, query string, id int64, userID string) (modelwish.Wish, error) {
	var entry modelstorage.WishPostgresEntry
	if err := s.DB.GetContext(ctx, &entry, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return modelwish.Wish{}, &storageErrors.NotFoundError{Entity: "wish", ID: strconv.FormatInt(id, 10), Err: err}
		}
		return modelwish.Wish{}, s.wrap(ctx, op, err)
	}
	wishes, err := s.toWishes(ctx, []modelstorage.WishPostgresEntry{entry})
	if err != nil {
		return modelwish.Wish{}, err
	}
	return wishes[0], nil
}

func (s *Storage) getUser(ctx context.Context, op, query, key string) (modelaccount.User, error) {
	var entry modelstorage.UserPostgresEntry
	if err := s.DB.GetContext(ctx, &entry, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return modelaccount.User{}, &storageErrors.NotFoundError{Entity: "user", ID: key, Err: err}
		}
		return modelaccount.User{}, s.wrap(ctx, op, err)
	}
	return entry.ToUser(), nil
}

// toWishes converts rows and attaches their galleries in one query.
func (s *Storage) toWishes(ctx context.Context, entries []modelstorage.WishPostgresEntry) ([]modelwish.Wish, error) {
	wishes := make([]modelwish.Wish, 0, len(entries))
	if len(entries) == 0 {
		return wishes, nil
	}
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	var images []modelstorage.ImagePostgresEntry
	query := "SELECT id, wish_id, storage_object_id FROM wishes_images WHERE wish_id = ANY($1) ORDER BY id"
	if err := s.DB.SelectContext(ctx, &images, query, pq.Array(ids)); err != nil {
		return nil, s.wrap(ctx, "ListImages", err)
	}
	gallery := make(map[int64][]modelwish.WishImage, len(entries))
	for _, img := range images {
		gallery[img.WishID] = append(gallery[img.WishID], modelwish.WishImage{ID: img.ID, WishID: img.WishID, StorageObjectID: img.StorageObjectID})
	}
	for _, e := range entries {
		w := e.ToWish()
		w.Images = gallery[e.ID]
		wishes = append(wishes, w)
	}
	return wishes, nil
}

func (s *Storage) expectRows(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	if n == 0 {
		return &storageErrors.NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

// wrap converts a driver error into a storage error.
func (s *Storage) wrap(ctx context.Context, op string, err error) error {
	s.log.WithField("op", op).Debug(err)
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	return &storageErrors.ExecutionPSQLError{Err: err}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func encodeMetadata(md modelwish.Metadata) (*string, error) {
	if len(md) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(md)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
