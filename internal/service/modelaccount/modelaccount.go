// Package modelaccount provides locally used types and their structure for user accounts.
package modelaccount

import "time"

// User is an anonymous or identified account owning a wishlist.
// DisplayName titles the user's own public list, ContactName is shown to list owners
// whose wishes the user reserved.
type User struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	DisplayName  *string   `json:"display_name"`
	ContactName  *string   `json:"contact_name"`
	ContactEmail *string   `json:"contact_email"`
	Currency     *string   `json:"currency"`
	Country      *string   `json:"country"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProfileFields is a partial profile update.
type ProfileFields struct {
	Slug         *string `json:"slug,omitempty" validate:"omitempty,min=3,max=40,alphanum"`
	DisplayName  *string `json:"display_name,omitempty" validate:"omitempty,max=100"`
	ContactName  *string `json:"contact_name,omitempty" validate:"omitempty,max=100"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	Currency     *string `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Country      *string `json:"country,omitempty" validate:"omitempty,iso3166_1_alpha2"`
}

// Apply copies the fields present in f onto u.
func (f ProfileFields) Apply(u *User) {
	if f.Slug != nil {
		u.Slug = *f.Slug
	}
	if f.DisplayName != nil {
		u.DisplayName = f.DisplayName
	}
	if f.ContactName != nil {
		u.ContactName = f.ContactName
	}
	if f.ContactEmail != nil {
		u.ContactEmail = f.ContactEmail
	}
	if f.Currency != nil {
		u.Currency = f.Currency
	}
	if f.Country != nil {
		u.Country = f.Country
	}
}
