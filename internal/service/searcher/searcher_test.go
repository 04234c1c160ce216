package searcher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_wishlist/internal/config"
	serviceErrors "github.com/danilovkiri/dk_go_wishlist/internal/service/errors"
)

const apiResponse = `{"SearchResult":{"Items":[
{"ASIN":"B000111","DetailPageURL":"https://www.amazon.com/dp/B000111",
 "ItemInfo":{"Title":{"DisplayValue":"Moka Pot"}},
 "Images":{"Primary":{"Medium":{"URL":"https://m.media-amazon.com/images/moka.jpg"}}},
 "Offers":{"Listings":[{"Price":{"Amount":24.99}}]}},
{"ASIN":"B000222","ItemInfo":{"Title":{"DisplayValue":"Filter"}}}]}}`

func newConfig(host string) *config.Config {
	cfg := config.NewDefaultConfiguration()
	cfg.AmazonHost = host
	cfg.AmazonAccessKey = "AKIDEXAMPLE"
	cfg.AmazonSecretKey = "secret"
	cfg.AmazonPartnerTag = "wishlist-20"
	return cfg
}

func TestSearch(t *testing.T) {
	var got searchRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, searchPath, r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/"))
		assert.Contains(t, r.Header.Get("Authorization"), "/us-east-1/ProductAdvertisingAPI/aws4_request")
		assert.NotEmpty(t, r.Header.Get("X-Amz-Date"))
		assert.Equal(t, target, r.Header.Get("X-Amz-Target"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(apiResponse))
	}))
	defer ts.Close()

	s := InitSearcher(newConfig(ts.URL), resty.New(), logrus.New())
	items, err := s.Search(context.Background(), "moka", 0)
	require.NoError(t, err)

	assert.Equal(t, "moka", got.Keywords)
	assert.Equal(t, "All", got.SearchIndex)
	assert.Equal(t, DefaultLimit, got.ItemCount)
	assert.Equal(t, "Associates", got.PartnerType)
	assert.Equal(t, resources, got.Resources)

	require.Len(t, items, 2)
	assert.Equal(t, "B000111", items[0].ASIN)
	assert.Equal(t, "Moka Pot", items[0].Title)
	assert.Equal(t, 24.99, *items[0].Price)
	assert.Equal(t, "https://www.amazon.com/dp/B000111", items[0].URL)
	assert.Nil(t, items[1].Price)
}

func TestSearch_MissingQuery(t *testing.T) {
	s := InitSearcher(newConfig("localhost"), resty.New(), logrus.New())
	_, err := s.Search(context.Background(), " ", 3)
	var target *serviceErrors.ServiceIncorrectInput
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "Missing query", err.Error())
}

func TestSearch_MissingCredentials(t *testing.T) {
	cfg := newConfig("localhost")
	cfg.AmazonSecretKey = ""
	s := InitSearcher(cfg, resty.New(), logrus.New())
	_, err := s.Search(context.Background(), "moka", 3)
	var target *serviceErrors.ServiceMissingCredentials
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "Missing Amazon API credentials", err.Error())
}

func TestSearch_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"Errors":[{"Code":"TooManyRequests"}]}`))
	}))
	defer ts.Close()
	s := InitSearcher(newConfig(ts.URL), resty.New(), logrus.New())
	_, err := s.Search(context.Background(), "moka", 1)
	var target *serviceErrors.ServiceUpstreamError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, http.StatusTooManyRequests, target.Status)
}
