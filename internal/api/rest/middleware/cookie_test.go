package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_wishlist/internal/config"
	"github.com/danilovkiri/dk_go_wishlist/internal/mocks"
)

func newCookieRouter(t *testing.T, s *mocks.MockSecretary) (*httptest.Server, *CookieHandler) {
	router := chi.NewRouter()
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	cfg := config.NewDefaultConfiguration()
	cookieHandler, err := NewCookieHandler(s, cfg, logrus.New())
	require.NoError(t, err)
	router.Use(cookieHandler.CookieHandle)
	router.Get("/get", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(UserIDFromContext(r.Context())))
	})
	router.With(cookieHandler.RequireSession).Get("/private", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("authorized"))
	})
	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		cookieHandler.SetSession(w, "user-1")
	})
	return ts, cookieHandler
}

func TestNewCookieHandlerNilSecretary(t *testing.T) {
	_, err := NewCookieHandler(nil, config.NewDefaultConfiguration(), logrus.New())
	assert.Error(t, err)
}

func TestCookieHandleAbsentCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockSecretary(ctrl)
	ts, _ := newCookieRouter(t, s)

	res, err := resty.New().R().
		SetCookie(&http.Cookie{Name: "some-other-key", Value: "some-token"}).
		Get(ts.URL + "/get")
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Empty(t, res.String())
	assert.Empty(t, res.Cookies())
}

func TestCookieHandleGoodCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockSecretary(ctrl)
	ts, _ := newCookieRouter(t, s)
	s.EXPECT().Decode("some-token").Return("user-1", nil)

	res, err := resty.New().R().
		SetCookie(&http.Cookie{Name: "user", Value: "some-token"}).
		Get(ts.URL + "/get")
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, "user-1", res.String())
}

func TestCookieHandleBadCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockSecretary(ctrl)
	ts, _ := newCookieRouter(t, s)
	s.EXPECT().Decode(gomock.Any()).Return("", errors.New("bad cookie"))

	res, err := resty.New().R().
		SetCookie(&http.Cookie{Name: "user", Value: "garbage"}).
		Get(ts.URL + "/get")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode())
	require.NotEmpty(t, res.Cookies())
	assert.Equal(t, "user", res.Cookies()[0].Name)
	assert.Empty(t, res.Cookies()[0].Value)
}

func TestRequireSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockSecretary(ctrl)
	ts, _ := newCookieRouter(t, s)

	res, err := resty.New().R().Get(ts.URL + "/private")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode())

	s.EXPECT().Decode("token").Return("user-1", nil)
	res, err = resty.New().R().
		SetCookie(&http.Cookie{Name: "user", Value: "token"}).
		Get(ts.URL + "/private")
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
}

func TestSetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockSecretary(ctrl)
	ts, _ := newCookieRouter(t, s)
	s.EXPECT().Encode("user-1").Return("encoded")

	res, err := resty.New().R().Post(ts.URL + "/login")
	require.NoError(t, err)
	require.Len(t, res.Cookies(), 1)
	cookie := res.Cookies()[0]
	assert.Equal(t, "user", cookie.Name)
	assert.Equal(t, "encoded", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}
