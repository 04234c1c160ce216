// Package accounts provides anonymous sign-in and profile management.
package accounts

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/speps/go-hashids/v2"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/accounts"
	serviceErrors "github.com/danilovkiri/dk_go_wishlist/internal/service/errors"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
)

const SaltKey = "Some Wishlist Salt"
const MinLength = 5

// slugAttempts bounds retries on a generated slug collision.
const slugAttempts = 3

// Check interface implementation explicitly
var (
	_ accounts.Manager = (*Accounts)(nil)
)

// Accounts struct defines data structure handling and provides support for adding new implementations.
type Accounts struct {
	UserStorage storage.UserStorage
	hashID      *hashids.HashID
	validate    *validator.Validate
	counter     uint32
	log         *logrus.Logger
}

// InitAccounts initializes an Accounts object and sets its attributes.
func InitAccounts(s storage.UserStorage, log *logrus.Logger) (*Accounts, error) {
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	hd := hashids.NewData()
	hd.Salt = SaltKey
	hd.MinLength = MinLength
	hashID, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, &serviceErrors.ServiceInitHashError{Msg: err.Error()}
	}
	return &Accounts{
		UserStorage: s,
		hashID:      hashID,
		validate:    validator.New(),
		log:         log,
	}, nil
}

// SignInAnonymously creates a user with a fresh identifier and public slug.
func (a *Accounts) SignInAnonymously(ctx context.Context) (modelaccount.User, error) {
	var lastErr error
	for i := 0; i < slugAttempts; i++ {
		slug, err := a.generateSlug()
		if err != nil {
			return modelaccount.User{}, &serviceErrors.ServiceEncodingHashError{Msg: err.Error()}
		}
		user, err := a.UserStorage.CreateUser(ctx, modelaccount.User{ID: uuid.New().String(), Slug: slug})
		if err == nil {
			a.log.WithField("user_id", user.ID).Info("anonymous user created")
			return user, nil
		}
		var conflict *storageErrors.AlreadyExistsError
		if !errors.As(err, &conflict) {
			return modelaccount.User{}, err
		}
		lastErr = err
	}
	return modelaccount.User{}, lastErr
}

// GetProfile returns the user identified by userID.
func (a *Accounts) GetProfile(ctx context.Context, userID string) (modelaccount.User, error) {
	return a.UserStorage.GetUser(ctx, userID)
}

// UpdateProfile validates and applies a partial profile update.
func (a *Accounts) UpdateProfile(ctx context.Context, userID string, fields modelaccount.ProfileFields) (modelaccount.User, error) {
	if err := a.validate.Struct(fields); err != nil {
		return modelaccount.User{}, &serviceErrors.ServiceIncorrectInput{Msg: "invalid profile", Err: err}
	}
	user, err := a.UserStorage.GetUser(ctx, userID)
	if err != nil {
		return modelaccount.User{}, err
	}
	fields.Apply(&user)
	return a.UserStorage.UpdateUser(ctx, user)
}

// generateSlug generates a short unique identifier from the current time and a process counter.
func (a *Accounts) generateSlug() (string, error) {
	now := time.Now().UnixNano()
	n := atomic.AddUint32(&a.counter, 1)
	return a.hashID.Encode([]int{int(now % 1e12), int(n)})
}
