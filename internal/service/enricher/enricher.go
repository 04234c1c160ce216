// Package enricher fetches a web page and extracts link-preview metadata from it.
package enricher

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	serviceErrors "github.com/danilovkiri/dk_go_wishlist/internal/service/errors"
)

// MaxBodySize caps the number of bytes read from a fetched page.
const MaxBodySize = 2 << 20

// Metadata is the link preview of a page, unknown fields are left empty.
type Metadata struct {
	Title    string `json:"title,omitempty"`
	SiteName string `json:"site_name,omitempty"`
	Image    string `json:"image,omitempty"`
	Favicon  string `json:"favicon,omitempty"`
}

// Enricher struct defines data structure handling and provides support for adding new implementations.
type Enricher struct {
	client *resty.Client
	log    *logrus.Logger
}

// InitEnricher initializes an Enricher using client for outbound requests.
func InitEnricher(client *resty.Client, log *logrus.Logger) *Enricher {
	return &Enricher{client: client, log: log}
}

// Enrich fetches rawURL and returns the metadata found in its HTML.
func (e *Enricher) Enrich(ctx context.Context, rawURL string) (Metadata, error) {
	if strings.TrimSpace(rawURL) == "" {
		return Metadata{}, &serviceErrors.ServiceIncorrectInput{Msg: "Missing url"}
	}
	page, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return Metadata{}, &serviceErrors.ServiceFetchError{URL: rawURL, Err: err}
	}
	if page.Scheme != "http" && page.Scheme != "https" {
		return Metadata{}, &serviceErrors.ServiceFetchError{URL: rawURL, Err: fmt.Errorf("unsupported scheme %q", page.Scheme)}
	}
	resp, err := e.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		Get(page.String())
	if err != nil {
		return Metadata{}, &serviceErrors.ServiceFetchError{URL: rawURL, Err: err}
	}
	body := resp.RawBody()
	defer body.Close()
	e.log.WithField("url", rawURL).Debugf("page fetched with status %d", resp.StatusCode())
	md, err := Parse(io.LimitReader(body, MaxBodySize), page)
	if err != nil {
		return Metadata{}, &serviceErrors.ServiceFetchError{URL: rawURL, Err: err}
	}
	return md, nil
}

// Parse extracts the first title, og:site_name, og:image and icon link of a document.
// Image and favicon are resolved against base and kept only when they are http(s) URLs.
func Parse(r io.Reader, base *url.URL) (Metadata, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Metadata{}, err
	}
	var md Metadata
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Title:
				if md.Title == "" {
					md.Title = clean(textOf(n))
				}
			case atom.Meta:
				property := strings.ToLower(attr(n, "property"))
				if property == "" {
					property = strings.ToLower(attr(n, "name"))
				}
				switch property {
				case "og:site_name":
					if md.SiteName == "" {
						md.SiteName = clean(attr(n, "content"))
					}
				case "og:image":
					if md.Image == "" {
						md.Image = resolve(base, attr(n, "content"))
					}
				}
			case atom.Link:
				if md.Favicon == "" && isIcon(attr(n, "rel")) {
					md.Favicon = resolve(base, attr(n, "href"))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return md, nil
}

func isIcon(rel string) bool {
	switch strings.Join(strings.Fields(strings.ToLower(rel)), " ") {
	case "icon", "shortcut icon":
		return true
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// clean drops control characters and collapses whitespace.
func clean(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func resolve(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}
