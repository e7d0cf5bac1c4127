package search

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homefinder/internal/listing"
	"homefinder/internal/store"
)

func ids(ls []listing.Listing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func titles(ls []listing.Listing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Title)
	}
	return out
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "student", Normalize("  Student \t"))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "a b", Normalize("A B"))
}

func TestFilter_CategoryOnlyIsOrderedSubset(t *testing.T) {
	all := store.Default().All()
	for _, c := range listing.Categories() {
		t.Run(string(c), func(t *testing.T) {
			var want []string
			for _, l := range all {
				if l.Category == c {
					want = append(want, l.ID)
				}
			}
			got := ids(Filter(all, c, ""))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Filter(%s, \"\") mismatch (-want +got):\n%s", c, diff)
			}
		})
	}
}

func TestFilter_Scenarios(t *testing.T) {
	all := store.Default().All()

	tests := []struct {
		name     string
		category listing.Category
		query    string
		want     []string
	}{
		{
			name:     "verified with empty query",
			category: listing.CategoryVerified,
			want:     []string{"Modern Studio in City Centre", "Luxury Penthouse with Maas View"},
		},
		{
			name:     "near you matches title case-insensitively",
			category: listing.CategoryNearYou,
			query:    "student",
			want:     []string{"Student Studio near Erasmus"},
		},
		{
			name:     "new matches on city",
			category: listing.CategoryNew,
			query:    "rotterdam",
			want:     []string{"Canal-side Loft", "Bright Room in Shared Apartment"},
		},
		{
			name:     "no match is empty, not an error",
			category: listing.CategoryVerified,
			query:    "xyz-no-match",
			want:     []string{},
		},
		{
			name:     "address match with surrounding whitespace",
			category: listing.CategoryNew,
			query:    "  WIJNHAVEN ",
			want:     []string{"Canal-side Loft"},
		},
		{
			name:     "query from another category does not leak",
			category: listing.CategoryVerified,
			query:    "student",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, tt.category, tt.query)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, titles(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_NoFalsePositivesOrNegatives(t *testing.T) {
	all := store.Default().All()
	queries := []string{"a", "st", "Rotterdam", "kade", "loft", "ERASMUS", "7", "house", "zzz"}

	for _, c := range listing.Categories() {
		for _, q := range queries {
			got := Filter(all, c, q)
			nq := strings.ToLower(q)

			inResult := make(map[string]bool, len(got))
			for _, l := range got {
				inResult[l.ID] = true
				assert.Equal(t, c, l.Category)
				hit := strings.Contains(strings.ToLower(l.Title), nq) ||
					strings.Contains(strings.ToLower(l.Address), nq) ||
					strings.Contains(strings.ToLower(l.City), nq)
				assert.True(t, hit, "%s should not match %q", l.ID, q)
			}

			for _, l := range all {
				if l.Category != c {
					continue
				}
				hit := strings.Contains(strings.ToLower(l.Title), nq) ||
					strings.Contains(strings.ToLower(l.Address), nq) ||
					strings.Contains(strings.ToLower(l.City), nq)
				if hit {
					assert.True(t, inResult[l.ID], "%s missing for %s/%q", l.ID, c, q)
				}
			}
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	all := store.Default().All()
	for _, c := range listing.Categories() {
		for _, q := range []string{"", "r", "studio", "Rotterdam"} {
			once := Filter(all, c, q)
			twice := Filter(once, c, q)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("Filter not idempotent for %s/%q:\n%s", c, q, diff)
			}
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	all := store.Default().All()
	before := append([]listing.Listing(nil), all...)
	_ = Filter(all, listing.CategoryNew, "loft")
	assert.Equal(t, before, all)
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, listing.CategoryNew, "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatchesAndApply(t *testing.T) {
	l := listing.Listing{ID: "x", Title: "Quiet Flat", Address: "Lijnbaan 1", City: "Rotterdam", Category: listing.CategoryNew}

	assert.True(t, Matches(l, Criteria{Category: listing.CategoryNew, Query: "LIJN"}))
	assert.False(t, Matches(l, Criteria{Category: listing.CategoryVerified}))
	assert.False(t, Matches(l, Criteria{Category: listing.CategoryNew, Query: "amsterdam"}))

	c := Criteria{Category: listing.CategoryNew, Query: "quiet"}
	assert.Equal(t, []listing.Listing{l}, c.Apply([]listing.Listing{l}))
}
