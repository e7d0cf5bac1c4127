// Package format renders listing fields for display.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"homefinder/internal/listing"
)

var printer = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"CHF": "CHF ",
}

// CurrencySymbol returns the display prefix for an ISO 4217 code. Unknown
// codes are shown as the code followed by a space.
func CurrencySymbol(code string) string {
	code = strings.ToUpper(code)
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	if code == "" {
		return ""
	}
	return code + " "
}

// Price renders amount with thousands grouping, e.g. "€1,250". Whole amounts
// have no decimals.
func Price(amount float64, currency string) string {
	if amount == math.Trunc(amount) {
		return CurrencySymbol(currency) + printer.Sprintf("%d", int64(amount))
	}
	return CurrencySymbol(currency) + printer.Sprintf("%.2f", amount)
}

// CardPrice is the short monthly price used on list cards: "€1,250/mo".
func CardPrice(l listing.Listing) string {
	return Price(l.Price, l.Currency) + "/mo"
}

// DetailPrice is the monthly price on the detail page: "€1,250/month".
func DetailPrice(l listing.Listing) string {
	return Price(l.Price, l.Currency) + "/month"
}

// Rooms renders the card size line: "2 bed • 45 m²".
func Rooms(l listing.Listing) string {
	return fmt.Sprintf("%d bed • %d m²", l.Bedrooms, l.Size)
}

// Location joins address and city.
func Location(l listing.Listing) string {
	switch {
	case l.City == "":
		return l.Address
	case l.Address == "":
		return l.City
	}
	return l.Address + ", " + l.City
}

// DateLayout is the long date form used for availability.
const DateLayout = "2 January 2006"

// Date renders an ISO date (YYYY-MM-DD) as "1 September 2025". Anything that
// does not parse is returned unchanged.
func Date(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return t.Format(DateLayout)
}

// Availability renders "Available from <date>", or "" when no date is set.
func Availability(l listing.Listing) string {
	if l.AvailableFrom == "" {
		return ""
	}
	return "Available from " + Date(l.AvailableFrom)
}

// EmptyState returns the heading and hint shown when no listing matches.
// query is the raw search text.
func EmptyState(query string) (title, hint string) {
	title = "No listings found"
	if q := strings.TrimSpace(query); q != "" {
		return title, fmt.Sprintf("No results for %q", q)
	}
	return title, "No listings match the current filters."
}
