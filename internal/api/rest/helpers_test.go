package rest

import (
	"net/url"
	"strconv"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func mustParse(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}
