// Package modeldto provides locally used types and their structure for data transfer objects.
package modeldto

import "github.com/danilovkiri/dk_go_wishlist/internal/service/searcher"

type (
	ResponseError struct {
		Error string `json:"error"`
	}

	RequestEnrich struct {
		URL string `json:"url"`
	}

	RequestSearch struct {
		Query string `json:"query"`
		Limit int    `json:"limit,omitempty"`
	}

	ResponseSearch struct {
		Items []searcher.Item `json:"items"`
	}

	ResponseCurrency struct {
		Currency string `json:"currency"`
	}

	ResponseDelete struct {
		ID       int64  `json:"id"`
		UndoPath string `json:"undo_path"`
	}

	ResponsePing struct {
		Status string `json:"status"`
	}
)
