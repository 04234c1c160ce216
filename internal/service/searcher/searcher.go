// Package searcher queries the Amazon Product Advertising API for products matching a keyword.
package searcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/config"
	serviceErrors "github.com/danilovkiri/dk_go_wishlist/internal/service/errors"
)

const (
	// DefaultLimit is the number of items requested when none is given.
	DefaultLimit = 5
	searchPath   = "/paapi5/searchitems"
	service      = "ProductAdvertisingAPI"
	target       = "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.SearchItems"
)

var resources = []string{
	"ItemInfo.Title",
	"Images.Primary.Medium",
	"Offers.Listings.Price",
}

// Item is one flattened search result.
type Item struct {
	ASIN  string   `json:"asin"`
	Title string   `json:"title,omitempty"`
	Image string   `json:"image,omitempty"`
	Price *float64 `json:"price,omitempty"`
	URL   string   `json:"url,omitempty"`
}

type searchRequest struct {
	Keywords    string   `json:"Keywords"`
	SearchIndex string   `json:"SearchIndex"`
	ItemCount   int      `json:"ItemCount"`
	PartnerTag  string   `json:"PartnerTag"`
	PartnerType string   `json:"PartnerType"`
	Resources   []string `json:"Resources"`
}

type searchResponse struct {
	SearchResult struct {
		Items []struct {
			ASIN          string `json:"ASIN"`
			DetailPageURL string `json:"DetailPageURL"`
			ItemInfo      struct {
				Title struct {
					DisplayValue string `json:"DisplayValue"`
				} `json:"Title"`
			} `json:"ItemInfo"`
			Images struct {
				Primary struct {
					Medium struct {
						URL string `json:"URL"`
					} `json:"Medium"`
				} `json:"Primary"`
			} `json:"Images"`
			Offers struct {
				Listings []struct {
					Price struct {
						Amount *float64 `json:"Amount"`
					} `json:"Price"`
				} `json:"Listings"`
			} `json:"Offers"`
		} `json:"Items"`
	} `json:"SearchResult"`
}

type payloadHashKey struct{}

// Searcher struct defines data structure handling and provides support for adding new implementations.
type Searcher struct {
	accessKey  string
	secretKey  string
	partnerTag string
	host       string
	region     string
	client     *resty.Client
	signer     *v4.Signer
	log        *logrus.Logger
}

// InitSearcher initializes a Searcher from the Amazon settings of cfg.
// AmazonHost may carry a scheme, https is assumed otherwise.
func InitSearcher(cfg *config.Config, client *resty.Client, log *logrus.Logger) *Searcher {
	host := cfg.AmazonHost
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}
	s := &Searcher{
		accessKey:  cfg.AmazonAccessKey,
		secretKey:  cfg.AmazonSecretKey,
		partnerTag: cfg.AmazonPartnerTag,
		host:       strings.TrimRight(host, "/"),
		region:     cfg.AmazonRegion,
		client:     client,
		signer:     v4.NewSigner(),
		log:        log,
	}
	client.SetPreRequestHook(s.sign)
	return s
}

// Search returns up to limit items matching query, a non-positive limit requests DefaultLimit.
func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]Item, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &serviceErrors.ServiceIncorrectInput{Msg: "Missing query"}
	}
	if s.accessKey == "" || s.secretKey == "" || s.partnerTag == "" {
		return nil, &serviceErrors.ServiceMissingCredentials{Msg: "Missing Amazon API credentials"}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	body, err := json.Marshal(searchRequest{
		Keywords:    query,
		SearchIndex: "All",
		ItemCount:   limit,
		PartnerTag:  s.partnerTag,
		PartnerType: "Associates",
		Resources:   resources,
	})
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(body)
	ctx = context.WithValue(ctx, payloadHashKey{}, hex.EncodeToString(sum[:]))

	var result searchResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json; charset=UTF-8").
		SetHeader("Content-Encoding", "amz-1.0").
		SetHeader("X-Amz-Target", target).
		SetBody(body).
		SetResult(&result).
		Post(s.host + searchPath)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &serviceErrors.ServiceUpstreamError{Status: resp.StatusCode(), Body: resp.String()}
	}

	items := make([]Item, 0, len(result.SearchResult.Items))
	for _, it := range result.SearchResult.Items {
		item := Item{
			ASIN:  it.ASIN,
			Title: it.ItemInfo.Title.DisplayValue,
			Image: it.Images.Primary.Medium.URL,
			URL:   it.DetailPageURL,
		}
		if len(it.Offers.Listings) > 0 {
			item.Price = it.Offers.Listings[0].Price.Amount
		}
		items = append(items, item)
	}
	s.log.WithField("query", query).Debugf("%d items found", len(items))
	return items, nil
}

// sign adds the AWS Signature V4 headers to the outgoing request.
func (s *Searcher) sign(_ *resty.Client, req *http.Request) error {
	hash, _ := req.Context().Value(payloadHashKey{}).(string)
	creds := aws.Credentials{AccessKeyID: s.accessKey, SecretAccessKey: s.secretKey}
	return s.signer.SignHTTP(req.Context(), creds, req, hash, service, s.region, time.Now().UTC())
}
