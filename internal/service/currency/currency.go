// Package currency guesses the currency a user most likely prices wishes in.
package currency

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
)

// Fallback is returned when nothing else is known.
const Fallback = "USD"

const fallbackRegion = "US"

// Args holds the user-provided hints, empty fields are unknown.
type Args struct {
	ProfileCurrency      string
	ProfileCountry       string
	PreviousWishCurrency string
}

// GuessUserCurrency resolves a currency code from the profile currency, the profile country,
// the previous wish currency and the region of locale, in that order.
func GuessUserCurrency(args Args, locale string) string {
	if args.ProfileCurrency != "" {
		return args.ProfileCurrency
	}
	if args.ProfileCountry != "" {
		if code, ok := FromCountry(args.ProfileCountry); ok {
			return code
		}
	}
	if args.PreviousWishCurrency != "" {
		return args.PreviousWishCurrency
	}
	region := fallbackRegion
	// region only counts when explicitly present, "fr" alone says nothing about the country
	if parts := strings.FieldsFunc(locale, func(r rune) bool { return r == '-' || r == '_' }); len(parts) > 1 {
		region = strings.ToUpper(parts[1])
	}
	if code, ok := FromCountry(region); ok {
		return code
	}
	return Fallback
}

// FromCountry maps an ISO 3166 country code to its currency.
func FromCountry(country string) (string, bool) {
	region, err := language.ParseRegion(strings.ToUpper(country))
	if err != nil {
		return "", false
	}
	unit, ok := currency.FromRegion(region)
	if !ok {
		return "", false
	}
	return unit.String(), true
}

// FirstLocale returns the preferred tag of an Accept-Language header.
func FirstLocale(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}

// Guesser collects the hints of a stored user.
type Guesser struct {
	Users storage.UserStorage
	log   *logrus.Logger
}

// InitGuesser initializes a Guesser object.
func InitGuesser(users storage.UserStorage, log *logrus.Logger) *Guesser {
	return &Guesser{Users: users, log: log}
}

// Guess returns the currency of userID, an empty userID relies on locale only.
// Lookup failures degrade to the locale based guess.
func (g *Guesser) Guess(ctx context.Context, userID, locale string) string {
	var args Args
	if userID != "" {
		if user, err := g.Users.GetUser(ctx, userID); err == nil {
			args.ProfileCurrency = deref(user.Currency)
			args.ProfileCountry = deref(user.Country)
		} else {
			g.log.WithField("user_id", userID).Debug(err)
		}
		if previous, err := g.Users.LastWishCurrency(ctx, userID); err == nil {
			args.PreviousWishCurrency = deref(previous)
		} else {
			g.log.WithField("user_id", userID).Debug(err)
		}
	}
	return GuessUserCurrency(args, locale)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
