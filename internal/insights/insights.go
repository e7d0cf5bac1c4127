// Package insights computes summary statistics over a listing collection.
package insights

import (
	"sort"

	"homefinder/internal/listing"
)

// CategoryStats summarizes one category.
type CategoryStats struct {
	Category       listing.Category
	Count          int
	AveragePrice   float64
	MinPrice       float64
	MaxPrice       float64
	VerifiedCount  int // listings with the IsVerified flag
	UnreadMessages int
}

// CityCount is one row of the per-city breakdown.
type CityCount struct {
	City  string
	Count int
}

// Report holds the computed statistics.
type Report struct {
	TotalListings  int
	Categories     []CategoryStats // in tab order, zero rows included
	ByCity         []CityCount     // count descending, then city name
	MostExpensive  *listing.Listing
	UnreadMessages int
	// Currency is the ISO code shared by every listing, or "" when mixed
	// (or when there are no listings).
	Currency string
}

// Category returns the stats row for c.
func (r Report) Category(c listing.Category) (CategoryStats, bool) {
	for _, s := range r.Categories {
		if s.Category == c {
			return s, true
		}
	}
	return CategoryStats{}, false
}

// Generate builds a report. Prices of zero are counted but excluded from the
// price statistics. When currencies are mixed the price statistics and
// MostExpensive are left empty.
func Generate(items []listing.Listing) Report {
	cats := listing.Categories()
	index := make(map[listing.Category]int, len(cats))
	report := Report{Categories: make([]CategoryStats, len(cats))}
	for i, c := range cats {
		report.Categories[i].Category = c
		index[c] = i
	}

	totals := make([]float64, len(cats))
	priced := make([]int, len(cats))
	cities := make(map[string]int)
	mixed := false

	for i := range items {
		l := items[i]
		report.TotalListings++
		report.UnreadMessages += l.UnreadMessages
		switch {
		case report.TotalListings == 1:
			report.Currency = l.Currency
		case l.Currency != report.Currency:
			mixed = true
		}
		if l.City != "" {
			cities[l.City]++
		}
		if l.Price > 0 && (report.MostExpensive == nil || l.Price > report.MostExpensive.Price) {
			report.MostExpensive = &items[i]
		}

		ci, ok := index[l.Category]
		if !ok {
			continue
		}
		s := &report.Categories[ci]
		s.Count++
		s.UnreadMessages += l.UnreadMessages
		if l.IsVerified {
			s.VerifiedCount++
		}
		if l.Price <= 0 {
			continue
		}
		if priced[ci] == 0 || l.Price < s.MinPrice {
			s.MinPrice = l.Price
		}
		if l.Price > s.MaxPrice {
			s.MaxPrice = l.Price
		}
		totals[ci] += l.Price
		priced[ci]++
	}

	if mixed {
		// Prices in different currencies are not comparable.
		report.Currency = ""
		report.MostExpensive = nil
		for i := range report.Categories {
			report.Categories[i].MinPrice = 0
			report.Categories[i].MaxPrice = 0
		}
	}

	for i := range report.Categories {
		if priced[i] > 0 && !mixed {
			report.Categories[i].AveragePrice = round2(totals[i] / float64(priced[i]))
		}
	}

	for city, n := range cities {
		report.ByCity = append(report.ByCity, CityCount{City: city, Count: n})
	}
	sort.Slice(report.ByCity, func(i, j int) bool {
		if report.ByCity[i].Count != report.ByCity[j].Count {
			return report.ByCity[i].Count > report.ByCity[j].Count
		}
		return report.ByCity[i].City < report.ByCity[j].City
	})

	return report
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}
