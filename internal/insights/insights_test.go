package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homefinder/internal/listing"
	"homefinder/internal/store"
)

func sampleListings() []listing.Listing {
	return []listing.Listing{
		{ID: "a", City: "Rotterdam", Price: 1000, Category: listing.CategoryVerified, IsVerified: true, UnreadMessages: 2},
		{ID: "b", City: "Rotterdam", Price: 1501, Category: listing.CategoryVerified},
		{ID: "c", City: "Delft", Price: 700, Category: listing.CategoryNew, UnreadMessages: 1},
		{ID: "d", City: "Delft", Price: 0, Category: listing.CategoryNew, IsVerified: true},
		{ID: "e", City: "Utrecht", Price: 2000, Category: listing.CategoryNearYou},
	}
}

func TestGenerate_Totals(t *testing.T) {
	r := Generate(sampleListings())
	assert.Equal(t, 5, r.TotalListings)
	assert.Equal(t, 3, r.UnreadMessages)
	require.NotNil(t, r.MostExpensive)
	assert.Equal(t, "e", r.MostExpensive.ID)
}

func TestGenerate_PerCategory(t *testing.T) {
	r := Generate(sampleListings())
	require.Len(t, r.Categories, 3)
	assert.Equal(t, listing.CategoryVerified, r.Categories[0].Category)
	assert.Equal(t, listing.CategoryNearYou, r.Categories[1].Category)
	assert.Equal(t, listing.CategoryNew, r.Categories[2].Category)

	v, ok := r.Category(listing.CategoryVerified)
	require.True(t, ok)
	assert.Equal(t, 2, v.Count)
	assert.Equal(t, 1250.5, v.AveragePrice)
	assert.Equal(t, 1000.0, v.MinPrice)
	assert.Equal(t, 1501.0, v.MaxPrice)
	assert.Equal(t, 1, v.VerifiedCount)
	assert.Equal(t, 2, v.UnreadMessages)

	// The zero price is counted but left out of the price stats.
	n, ok := r.Category(listing.CategoryNew)
	require.True(t, ok)
	assert.Equal(t, 2, n.Count)
	assert.Equal(t, 700.0, n.AveragePrice)
	assert.Equal(t, 700.0, n.MinPrice)
	assert.Equal(t, 1, n.VerifiedCount)
}

func TestGenerate_ByCity(t *testing.T) {
	r := Generate(sampleListings())
	assert.Equal(t, []CityCount{
		{City: "Delft", Count: 2},
		{City: "Rotterdam", Count: 2},
		{City: "Utrecht", Count: 1},
	}, r.ByCity)
}

func TestGenerate_Empty(t *testing.T) {
	r := Generate(nil)
	assert.Equal(t, 0, r.TotalListings)
	assert.Nil(t, r.MostExpensive)
	require.Len(t, r.Categories, 3)
	for _, s := range r.Categories {
		assert.Zero(t, s.Count)
		assert.Zero(t, s.AveragePrice)
	}
}

func TestGenerate_Seed(t *testing.T) {
	r := Generate(store.Default().All())
	assert.Equal(t, 6, r.TotalListings)
	for _, s := range r.Categories {
		assert.Equal(t, 2, s.Count, s.Category)
	}
	require.NotNil(t, r.MostExpensive)
	assert.Equal(t, "lst-003", r.MostExpensive.ID)
	assert.Equal(t, []CityCount{{City: "Rotterdam", Count: 6}}, r.ByCity)
	assert.Equal(t, "EUR", r.Currency)
}

func TestGenerate_MixedCurrency(t *testing.T) {
	r := Generate([]listing.Listing{
		{ID: "a", Currency: "EUR", Price: 1, Category: listing.CategoryNew},
		{ID: "b", Currency: "USD", Price: 2, Category: listing.CategoryNew},
	})
	assert.Equal(t, "", r.Currency)
	assert.Nil(t, r.MostExpensive)

	s, ok := r.Category(listing.CategoryNew)
	require.True(t, ok)
	assert.Equal(t, 2, s.Count)
	assert.Zero(t, s.AveragePrice)
	assert.Zero(t, s.MinPrice)
	assert.Zero(t, s.MaxPrice)
}
