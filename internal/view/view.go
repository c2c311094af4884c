// Package view derives filtered projections and aggregate counts from the
// book collection. Everything here is a pure function of its inputs: no
// mutation, recomputed on every call.
package view

import (
	"strings"

	"github.com/aferrand/shelf/internal/api"
)

// Filter holds the client-side filter state.
type Filter struct {
	Query         string
	FavoritesOnly bool
}

// Apply returns the records matching the filter, preserving order. The query
// is trimmed and matched case-insensitively against the title; an empty query
// matches everything.
func Apply(books []api.Book, filter Filter) []api.Book {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	var matched []api.Book
	for _, book := range books {
		if filter.FavoritesOnly && !book.IsFavorite {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(book.Title), query) {
			continue
		}
		matched = append(matched, book)
	}
	return matched
}

// Counts aggregates over the full, unfiltered collection.
type Counts struct {
	Total     int
	Favorites int
}

// Tally computes collection-wide counts, independent of any filter.
func Tally(books []api.Book) Counts {
	counts := Counts{Total: len(books)}
	for _, book := range books {
		if book.IsFavorite {
			counts.Favorites++
		}
	}
	return counts
}
