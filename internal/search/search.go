// Package search implements the listing filter: an exact category match
// combined with a case-insensitive substring query over title, address and city.
package search

import (
	"strings"

	"homefinder/internal/listing"
)

// Criteria is the (category, query) pair that defines the visible subset.
type Criteria struct {
	Category listing.Category
	Query    string
}

// Normalize trims and case-folds a raw query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Matches reports whether l satisfies c. The query is normalized here, so
// callers pass it verbatim.
func Matches(l listing.Listing, c Criteria) bool {
	return matches(l, c.Category, Normalize(c.Query))
}

func matches(l listing.Listing, category listing.Category, q string) bool {
	if l.Category != category {
		return false
	}
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.Address), q) ||
		strings.Contains(strings.ToLower(l.City), q)
}

// Filter returns the listings in items that belong to category and, for a
// non-empty query, contain it in title, address or city. Order is preserved.
// The result is never nil.
func Filter(items []listing.Listing, category listing.Category, query string) []listing.Listing {
	q := Normalize(query)
	out := make([]listing.Listing, 0, len(items))
	for _, l := range items {
		if matches(l, category, q) {
			out = append(out, l)
		}
	}
	return out
}

// Apply filters items with c.
func (c Criteria) Apply(items []listing.Listing) []listing.Listing {
	return Filter(items, c.Category, c.Query)
}
