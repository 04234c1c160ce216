package reserver

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_wishlist/internal/mocks"
	serviceErrors "github.com/danilovkiri/dk_go_wishlist/internal/service/errors"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/reserver"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage/inmemory"
)

func strPtr(s string) *string { return &s }

var listOwner = modelaccount.User{ID: "owner-id", Slug: "anna", DisplayName: strPtr("Anna's list")}

func TestPublicList_OwnerNeverQueriesReservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockStorage(ctrl)
	s.EXPECT().GetUserBySlug(gomock.Any(), "anna").Return(listOwner, nil)
	s.EXPECT().ListPublicWishes(gomock.Any(), "owner-id").Return([]modelwish.Wish{{ID: 1, Name: "Scarf", IsPublic: true}}, nil)
	// no ListReservationsByWishIDs expectation: any call fails the test
	r, err := InitReserver(s, nil, logrus.New())
	require.NoError(t, err)

	list, err := r.PublicList(context.Background(), "anna", "owner-id")
	require.NoError(t, err)
	assert.True(t, list.IsOwner)
	assert.Nil(t, list.Remaining)
	require.Len(t, list.Wishes, 1)
	assert.False(t, list.Wishes[0].Reserved)
	assert.False(t, list.Wishes[0].ReservedByMe)
	assert.Nil(t, list.Wishes[0].ReservedByName)
}

func TestPublicList_VisitorSeesReservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockStorage(ctrl)
	s.EXPECT().GetUserBySlug(gomock.Any(), "anna").Return(listOwner, nil)
	s.EXPECT().ListPublicWishes(gomock.Any(), "owner-id").Return([]modelwish.Wish{{ID: 1, Name: "Scarf"}, {ID: 2, Name: "Gloves"}}, nil)
	s.EXPECT().ListReservationsByWishIDs(gomock.Any(), []int64{1, 2}).Return([]modelwish.ReservationInfo{
		{Reservation: modelwish.Reservation{ID: 7, WishID: 2, UserID: "visitor"}, ReserverName: strPtr("Tom")},
	}, nil)
	r, _ := InitReserver(s, nil, logrus.New())

	list, err := r.PublicList(context.Background(), "anna", "visitor")
	require.NoError(t, err)
	assert.False(t, list.IsOwner)
	assert.Equal(t, "Anna's list", *list.Title)
	require.NotNil(t, list.Remaining)
	assert.Equal(t, 1, *list.Remaining)
	assert.False(t, list.Wishes[0].Reserved)
	assert.True(t, list.Wishes[1].Reserved)
	assert.True(t, list.Wishes[1].ReservedByMe)
	assert.Equal(t, "Tom", *list.Wishes[1].ReservedByName)
}

func TestPublicList_UnknownSlug(t *testing.T) {
	r, _ := InitReserver(inmemory.InitStorage(logrus.New()), nil, logrus.New())
	_, err := r.PublicList(context.Background(), "nobody", "")
	var target *storageErrors.NotFoundError
	assert.True(t, errors.As(err, &target))
}

// seed stores an owner with one public and one private wish.
func seed(t *testing.T, st *inmemory.Storage) (public, private modelwish.Wish) {
	ctx := context.Background()
	_, err := st.CreateUser(ctx, listOwner)
	require.NoError(t, err)
	_, err = st.CreateUser(ctx, modelaccount.User{ID: "visitor", Slug: "tom", DisplayName: strPtr("Tom's list")})
	require.NoError(t, err)
	_, err = st.CreateUser(ctx, modelaccount.User{ID: "other", Slug: "eve"})
	require.NoError(t, err)
	public, err = st.CreateWish(ctx, modelwish.Wish{UserID: listOwner.ID, Name: "Scarf", IsPublic: true})
	require.NoError(t, err)
	private, err = st.CreateWish(ctx, modelwish.Wish{UserID: listOwner.ID, Name: "Secret"})
	require.NoError(t, err)
	return public, private
}

func TestReserve(t *testing.T) {
	st := inmemory.InitStorage(logrus.New())
	public, private := seed(t, st)
	r, _ := InitReserver(st, nil, logrus.New())
	ctx := context.Background()

	res, err := r.Reserve(ctx, "anna", public.ID, "visitor", reserver.Contact{Name: strPtr("Tom")})
	require.NoError(t, err)
	assert.Equal(t, public.ID, res.WishID)
	visitor, _ := st.GetUser(ctx, "visitor")
	assert.Equal(t, "Tom", *visitor.ContactName)
	assert.Equal(t, "Tom's list", *visitor.DisplayName)

	_, err = r.Reserve(ctx, "anna", public.ID, "other", reserver.Contact{})
	var conflict *storageErrors.AlreadyExistsError
	assert.True(t, errors.As(err, &conflict))

	_, err = r.Reserve(ctx, "anna", public.ID, listOwner.ID, reserver.Contact{})
	var forbidden *serviceErrors.ServiceForbidden
	assert.True(t, errors.As(err, &forbidden))

	_, err = r.Reserve(ctx, "anna", private.ID, "other", reserver.Contact{})
	var notFound *storageErrors.NotFoundError
	assert.True(t, errors.As(err, &notFound))

	_, err = r.Reserve(ctx, "anna", public.ID, "other", reserver.Contact{Email: strPtr("nope")})
	var invalid *serviceErrors.ServiceIncorrectInput
	assert.True(t, errors.As(err, &invalid))

	mine, err := r.MyReservations(ctx, "visitor")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCancelReservation(t *testing.T) {
	st := inmemory.InitStorage(logrus.New())
	public, _ := seed(t, st)
	r, _ := InitReserver(st, nil, logrus.New())
	ctx := context.Background()
	_, err := r.Reserve(ctx, "anna", public.ID, "visitor", reserver.Contact{})
	require.NoError(t, err)

	err = r.CancelReservation(ctx, "anna", public.ID, "other")
	var notFound *storageErrors.NotFoundError
	assert.True(t, errors.As(err, &notFound))

	require.NoError(t, r.CancelReservation(ctx, "anna", public.ID, "visitor"))
	list, err := r.PublicList(ctx, "anna", "other")
	require.NoError(t, err)
	assert.Equal(t, 1, *list.Remaining)
}
