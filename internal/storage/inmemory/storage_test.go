package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
)

const (
	owner = "owner"
	guest = "guest"
)

type StorageTestSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	clock   time.Time
}

func (suite *StorageTestSuite) SetupTest() {
	suite.storage = InitStorage(logrus.New())
	suite.ctx = context.Background()
	suite.clock = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.storage.now = func() time.Time {
		suite.clock = suite.clock.Add(time.Second)
		return suite.clock
	}
}

func TestStorageTestSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func strPtr(s string) *string { return &s }

func (suite *StorageTestSuite) create(name, price string, public bool) modelwish.Wish {
	w := modelwish.Wish{UserID: owner, Name: name, IsPublic: public}
	if price != "" {
		w.Price = strPtr(price)
	}
	created, err := suite.storage.CreateWish(suite.ctx, w)
	suite.Require().NoError(err)
	return created
}

func (suite *StorageTestSuite) TestCreateAndGet() {
	created := suite.create("Bike", "", false)
	suite.Equal(int64(1), created.ID)
	suite.Equal(modelwish.StatusAvailable, created.Status)
	suite.Equal(created.CreatedAt, created.UpdatedAt)

	got, err := suite.storage.GetWish(suite.ctx, owner, created.ID)
	suite.NoError(err)
	suite.Equal("Bike", got.Name)

	_, err = suite.storage.GetWish(suite.ctx, guest, created.ID)
	var notFound *storageErrors.NotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *StorageTestSuite) TestListSortFilterPaginate() {
	suite.create("b", "30", true)
	suite.create("a", "10", false)
	suite.create("c", "20", true)

	names := func(ws []modelwish.Wish) []string {
		var out []string
		for _, w := range ws {
			out = append(out, w.Name)
		}
		return out
	}
	isPublic := true
	tests := []struct {
		name   string
		params modelwish.ListParams
		want   []string
		total  int
	}{
		{name: "created asc", params: modelwish.ListParams{}, want: []string{"b", "a", "c"}, total: 3},
		{name: "created desc", params: modelwish.ListParams{Desc: true}, want: []string{"c", "a", "b"}, total: 3},
		{name: "name", params: modelwish.ListParams{Sort: modelwish.SortName}, want: []string{"a", "b", "c"}, total: 3},
		{name: "price desc", params: modelwish.ListParams{Sort: modelwish.SortPrice, Desc: true}, want: []string{"b", "c", "a"}, total: 3},
		{name: "public only", params: modelwish.ListParams{IsPublic: &isPublic}, want: []string{"b", "c"}, total: 2},
		{name: "page", params: modelwish.ListParams{Limit: 1, Offset: 1}, want: []string{"a"}, total: 3},
		{name: "past the end", params: modelwish.ListParams{Offset: 5}, want: nil, total: 3},
		{name: "exclude", params: modelwish.ListParams{Exclude: []int64{1}}, want: []string{"a", "c"}, total: 2},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			got, total, err := suite.storage.ListWishes(suite.ctx, owner, tt.params)
			suite.NoError(err)
			suite.Equal(tt.total, total)
			suite.Equal(tt.want, names(got))
		})
	}
}

func (suite *StorageTestSuite) TestDeleteCascades() {
	w := suite.create("Bike", "", true)
	_, err := suite.storage.AddImages(suite.ctx, w.ID, []string{"1/a.png"})
	suite.Require().NoError(err)
	_, err = suite.storage.AddReservation(suite.ctx, w.ID, guest)
	suite.Require().NoError(err)

	suite.NoError(suite.storage.DeleteWish(suite.ctx, owner, w.ID))
	suite.Empty(suite.storage.images)
	suite.Empty(suite.storage.reservations)

	var notFound *storageErrors.NotFoundError
	suite.ErrorAs(suite.storage.DeleteWish(suite.ctx, owner, w.ID), &notFound)
}

func (suite *StorageTestSuite) TestImages() {
	w := suite.create("Bike", "", false)
	added, err := suite.storage.AddImages(suite.ctx, w.ID, []string{"1/a.png", "1/b.png"})
	suite.Require().NoError(err)
	suite.Len(added, 2)

	got, err := suite.storage.GetWish(suite.ctx, owner, w.ID)
	suite.Require().NoError(err)
	suite.Equal(added, got.Images)

	suite.NoError(suite.storage.DeleteImages(suite.ctx, w.ID, []int64{added[0].ID}))
	_, err = suite.storage.GetImage(suite.ctx, w.ID, added[0].ID)
	var notFound *storageErrors.NotFoundError
	suite.ErrorAs(err, &notFound)

	_, err = suite.storage.AddImages(suite.ctx, 99, []string{"x"})
	suite.ErrorAs(err, &notFound)
}

func (suite *StorageTestSuite) TestPublicWishesAndReservations() {
	public := suite.create("Book", "", true)
	private := suite.create("Diary", "", false)

	list, err := suite.storage.ListPublicWishes(suite.ctx, owner)
	suite.Require().NoError(err)
	suite.Len(list, 1)
	_, err = suite.storage.GetPublicWish(suite.ctx, owner, private.ID)
	var notFound *storageErrors.NotFoundError
	suite.ErrorAs(err, &notFound)

	_, err = suite.storage.CreateUser(suite.ctx, modelaccount.User{ID: guest, Slug: "guest1", DisplayName: strPtr("Bob's list"), ContactName: strPtr("Bob")})
	suite.Require().NoError(err)
	_, err = suite.storage.AddReservation(suite.ctx, public.ID, guest)
	suite.Require().NoError(err)
	_, err = suite.storage.AddReservation(suite.ctx, public.ID, "third")
	var exists *storageErrors.AlreadyExistsError
	suite.ErrorAs(err, &exists)

	infos, err := suite.storage.ListReservationsByWishIDs(suite.ctx, []int64{public.ID, private.ID})
	suite.Require().NoError(err)
	suite.Require().Len(infos, 1)
	suite.Equal("Bob", *infos[0].ReserverName)

	mine, err := suite.storage.ListReservationsByUserID(suite.ctx, guest)
	suite.Require().NoError(err)
	suite.Len(mine, 1)

	suite.ErrorAs(suite.storage.DeleteReservation(suite.ctx, public.ID, "third"), &notFound)
	suite.NoError(suite.storage.DeleteReservation(suite.ctx, public.ID, guest))
}

func (suite *StorageTestSuite) TestUsers() {
	_, err := suite.storage.CreateUser(suite.ctx, modelaccount.User{ID: "u1", Slug: "one"})
	suite.Require().NoError(err)
	_, err = suite.storage.CreateUser(suite.ctx, modelaccount.User{ID: "u2", Slug: "one"})
	var exists *storageErrors.AlreadyExistsError
	suite.ErrorAs(err, &exists)

	_, err = suite.storage.CreateUser(suite.ctx, modelaccount.User{ID: "u2", Slug: "two"})
	suite.Require().NoError(err)
	_, err = suite.storage.UpdateUser(suite.ctx, modelaccount.User{ID: "u2", Slug: "one"})
	suite.ErrorAs(err, &exists)

	updated, err := suite.storage.UpdateUser(suite.ctx, modelaccount.User{ID: "u2", Slug: "deux"})
	suite.Require().NoError(err)
	suite.False(updated.CreatedAt.IsZero())
	got, err := suite.storage.GetUserBySlug(suite.ctx, "deux")
	suite.Require().NoError(err)
	suite.Equal("u2", got.ID)
	_, err = suite.storage.GetUserBySlug(suite.ctx, "two")
	var notFound *storageErrors.NotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *StorageTestSuite) TestLastWishCurrency() {
	currency, err := suite.storage.LastWishCurrency(suite.ctx, owner)
	suite.NoError(err)
	suite.Nil(currency)
	for _, c := range []string{"EUR", "GBP"} {
		_, err := suite.storage.CreateWish(suite.ctx, modelwish.Wish{UserID: owner, Name: c, Currency: strPtr(c)})
		suite.Require().NoError(err)
	}
	suite.create("no currency", "", false)
	currency, err = suite.storage.LastWishCurrency(suite.ctx, owner)
	suite.NoError(err)
	suite.Equal("GBP", *currency)
}

func (suite *StorageTestSuite) TestContextCancelled() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()
	suite.storage.mu.Lock()
	defer suite.storage.mu.Unlock()
	_, err := suite.storage.GetWish(ctx, owner, 1)
	var timeout *storageErrors.ContextTimeoutExceededError
	suite.ErrorAs(err, &timeout)
}
