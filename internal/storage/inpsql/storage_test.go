package inpsql

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
)

var wishRowColumns = []string{"id", "user_id", "name", "description", "url", "price", "currency", "image_url",
	"priority", "is_public", "status", "metadata", "created_at", "updated_at"}

var userRowColumns = []string{"id", "slug", "display_name", "contact_name", "contact_email", "currency", "country", "created_at"}

type PSQLTestSuite struct {
	suite.Suite
	storage *Storage
	mock    sqlmock.Sqlmock
	ctx     context.Context
	now     time.Time
}

func (suite *PSQLTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	suite.Require().NoError(err)
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	suite.storage = &Storage{DB: sqlx.NewDb(db, "pgx"), log: log}
	suite.mock = mock
	suite.ctx = context.Background()
	suite.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *PSQLTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
	suite.storage.DB.Close()
}

func TestPSQLTestSuite(t *testing.T) {
	suite.Run(t, new(PSQLTestSuite))
}

func q(query string) string {
	return regexp.QuoteMeta(query)
}

func (suite *PSQLTestSuite) wishRow(id int64, name string) []driver.Value {
	return []driver.Value{id, "owner", name, "", nil, "10.00", "EUR", nil, nil, true, "available",
		[]byte(`{"siteName":"shop"}`), suite.now, suite.now}
}

func (suite *PSQLTestSuite) TestListWishesBuildsFilters() {
	status := modelwish.StatusAvailable
	isPublic := true
	params := modelwish.ListParams{
		Status:   &status,
		IsPublic: &isPublic,
		Sort:     modelwish.SortName,
		Desc:     true,
		Limit:    10,
		Offset:   20,
		Exclude:  []int64{3, 4},
	}
	cond := "user_id = $1 AND status = $2 AND is_public = $3 AND NOT (id = ANY($4))"
	suite.mock.ExpectQuery(q("SELECT count(*) FROM wishes WHERE " + cond)).
		WithArgs("owner", "available", true, "{3,4}").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(22))
	suite.mock.ExpectQuery(q("FROM wishes WHERE " + cond + " ORDER BY lower(name) DESC NULLS LAST, id DESC LIMIT $5 OFFSET $6")).
		WithArgs("owner", "available", true, "{3,4}", 10, 20).
		WillReturnRows(sqlmock.NewRows(wishRowColumns).AddRow(suite.wishRow(1, "Bike")...).AddRow(suite.wishRow(2, "Atlas")...))
	suite.mock.ExpectQuery(q("FROM wishes_images WHERE wish_id = ANY($1)")).
		WithArgs("{1,2}").
		WillReturnRows(sqlmock.NewRows([]string{"id", "wish_id", "storage_object_id"}).AddRow(int64(9), int64(2), "2/a.png"))

	wishes, total, err := suite.storage.ListWishes(suite.ctx, "owner", params)
	suite.Require().NoError(err)
	suite.Equal(22, total)
	suite.Require().Len(wishes, 2)
	suite.Equal("Bike", wishes[0].Name)
	suite.Require().NotNil(wishes[0].Price)
	suite.Equal("10.00", *wishes[0].Price)
	suite.Nil(wishes[0].URL)
	suite.Equal(modelwish.Metadata{"siteName": "shop"}, wishes[0].Metadata)
	suite.Empty(wishes[0].Images)
	suite.Equal([]modelwish.WishImage{{ID: 9, WishID: 2, StorageObjectID: "2/a.png"}}, wishes[1].Images)
}

func (suite *PSQLTestSuite) TestListWishesDefaults() {
	suite.mock.ExpectQuery(q("SELECT count(*) FROM wishes WHERE user_id = $1")).
		WithArgs("owner").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	suite.mock.ExpectQuery(q("WHERE user_id = $1 ORDER BY created_at ASC NULLS LAST, id ASC")).
		WithArgs("owner").
		WillReturnRows(sqlmock.NewRows(wishRowColumns))

	wishes, total, err := suite.storage.ListWishes(suite.ctx, "owner", modelwish.ListParams{})
	suite.Require().NoError(err)
	suite.Zero(total)
	suite.Empty(wishes)
}

func (suite *PSQLTestSuite) TestGetWishNotFound() {
	suite.mock.ExpectQuery(q("FROM wishes WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(5), "owner").
		WillReturnRows(sqlmock.NewRows(wishRowColumns))

	_, err := suite.storage.GetWish(suite.ctx, "owner", 5)
	var notFound *storageErrors.NotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *PSQLTestSuite) TestDeleteWishNoRows() {
	suite.mock.ExpectExec(q("DELETE FROM wishes WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(5), "owner").
		WillReturnResult(sqlmock.NewResult(0, 0))

	var notFound *storageErrors.NotFoundError
	suite.ErrorAs(suite.storage.DeleteWish(suite.ctx, "owner", 5), &notFound)
}

func (suite *PSQLTestSuite) TestAddReservationUniqueViolation() {
	suite.mock.ExpectQuery(q("INSERT INTO reservations (wish_id, user_id)")).
		WithArgs(int64(5), "guest").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := suite.storage.AddReservation(suite.ctx, 5, "guest")
	var exists *storageErrors.AlreadyExistsError
	suite.ErrorAs(err, &exists)
}

func (suite *PSQLTestSuite) TestCreateUser() {
	name := "Bob"
	suite.mock.ExpectQuery(q("INSERT INTO users (id, slug, display_name, contact_name, contact_email, currency, country)")).
		WithArgs("u1", "abcde", nil, "Bob", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("u1", "abcde", nil, "Bob", nil, nil, nil, suite.now))

	user, err := suite.storage.CreateUser(suite.ctx, modelaccount.User{ID: "u1", Slug: "abcde", ContactName: &name})
	suite.Require().NoError(err)
	suite.Nil(user.DisplayName)
	suite.Require().NotNil(user.ContactName)
	suite.Equal("Bob", *user.ContactName)
	suite.Equal(suite.now, user.CreatedAt)
}

func (suite *PSQLTestSuite) TestUpdateUserSlugTaken() {
	suite.mock.ExpectQuery(q("UPDATE users SET slug = $2")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := suite.storage.UpdateUser(suite.ctx, modelaccount.User{ID: "u1", Slug: "taken"})
	var exists *storageErrors.AlreadyExistsError
	suite.ErrorAs(err, &exists)
}

func (suite *PSQLTestSuite) TestReserverNameComesFromContactName() {
	suite.mock.ExpectQuery(q("u.contact_name AS reserver_name")).
		WithArgs("{1}").
		WillReturnRows(sqlmock.NewRows([]string{"id", "wish_id", "user_id", "created_at", "reserver_name"}).
			AddRow(int64(3), int64(1), "guest", suite.now, "Bob"))

	infos, err := suite.storage.ListReservationsByWishIDs(suite.ctx, []int64{1})
	suite.Require().NoError(err)
	suite.Require().Len(infos, 1)
	suite.Equal("Bob", *infos[0].ReserverName)
}

func (suite *PSQLTestSuite) TestLastWishCurrencyNone() {
	suite.mock.ExpectQuery(q("SELECT currency FROM wishes")).
		WithArgs("owner").
		WillReturnRows(sqlmock.NewRows([]string{"currency"}))

	currency, err := suite.storage.LastWishCurrency(suite.ctx, "owner")
	suite.NoError(err)
	suite.Nil(currency)
}

func (suite *PSQLTestSuite) TestErrorMapping() {
	suite.mock.ExpectExec(q("DELETE FROM reservations")).
		WillReturnError(errors.New("connection reset"))
	var execErr *storageErrors.ExecutionPSQLError
	suite.ErrorAs(suite.storage.DeleteReservation(suite.ctx, 1, "guest"), &execErr)

	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()
	_, err := suite.storage.GetUser(ctx, "u1")
	var timeout *storageErrors.ContextTimeoutExceededError
	suite.ErrorAs(err, &timeout)
}
