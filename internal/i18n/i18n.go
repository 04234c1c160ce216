// Package i18n loads translation bundles on demand and resolves supported locales.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*/common.*.json
var bundles embed.FS

// Supported lists the locales a bundle exists for.
var Supported = []string{"en", "fr", "pseudo"}

// tags maps route locales onto language tags, pseudo is the en-XA pseudo-locale.
var tags = map[string]language.Tag{
	"en":     language.English,
	"fr":     language.French,
	"pseudo": language.MustParse("en-XA"),
}

// DefaultLocale is the fallback locale.
const DefaultLocale = "en"

// Catalog caches bundles after their first load.
type Catalog struct {
	mu            sync.RWMutex
	defaultLocale string
	bundle        *goi18n.Bundle
	keys          map[string][]string
	localizers    map[string]*goi18n.Localizer
}

// NewCatalog initializes a Catalog falling back to defaultLocale.
func NewCatalog(defaultLocale string) (*Catalog, error) {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	if !IsSupported(defaultLocale) {
		return nil, fmt.Errorf("unsupported default locale %q", defaultLocale)
	}
	bundle := goi18n.NewBundle(tags[defaultLocale])
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	return &Catalog{
		defaultLocale: defaultLocale,
		bundle:        bundle,
		keys:          make(map[string][]string),
		localizers:    make(map[string]*goi18n.Localizer),
	}, nil
}

// IsSupported reports whether locale has a bundle.
func IsSupported(locale string) bool {
	_, ok := tags[locale]
	return ok
}

// Default returns the fallback locale of c.
func (c *Catalog) Default() string {
	return c.defaultLocale
}

// Load reads the bundle of locale into the catalog on first use.
func (c *Catalog) Load(locale string) error {
	tag, ok := tags[locale]
	if !ok {
		return fmt.Errorf("unsupported locale %q", locale)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.keys[locale]; ok {
		return nil
	}
	file, err := c.bundle.LoadMessageFileFS(bundles, "locales/"+locale+"/common."+tag.String()+".json")
	if err != nil {
		return fmt.Errorf("locale %s: %w", locale, err)
	}
	keys := make([]string, 0, len(file.Messages))
	for _, m := range file.Messages {
		keys = append(keys, m.ID)
	}
	sort.Strings(keys)
	c.keys[locale] = keys
	c.localizers[locale] = goi18n.NewLocalizer(c.bundle, tag.String(), tags[c.defaultLocale].String())
	return nil
}

// T translates key in locale, falling back to the default locale and then to key itself.
func (c *Catalog) T(locale, key string) string {
	if err := c.Load(c.defaultLocale); err != nil {
		return key
	}
	if err := c.Load(locale); err != nil {
		locale = c.defaultLocale
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	msg, err := c.localizers[locale].Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil && msg == "" {
		return key
	}
	return msg
}

// Keys returns the sorted keys of the bundle of locale.
func (c *Catalog) Keys(locale string) ([]string, error) {
	if err := c.Load(locale); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keys[locale], nil
}

// Loads returns how many bundles were read from disk.
func (c *Catalog) Loads() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys)
}
