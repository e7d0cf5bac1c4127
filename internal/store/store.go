// Package store holds the write-once listing repository.
//
// A Repository is built once in the composition root from the embedded seed
// (or an operator-supplied YAML file) and never mutated afterwards, so it is
// shared across goroutines without locking.
package store

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"homefinder/internal/listing"
)

//go:embed seed.yaml
var seedYAML []byte

// ErrDuplicateID is returned when two records share an id.
var ErrDuplicateID = errors.New("store: duplicate listing id")

var validate = validator.New()

// document is the on-disk layout of a listings file.
type document struct {
	Listings []listing.Listing `yaml:"listings"`
}

// Repository is the full, ordered, read-only listing collection.
type Repository struct {
	items []listing.Listing
	byID  map[string]int
}

// New validates items and builds a repository from a private copy of them.
func New(items []listing.Listing) (*Repository, error) {
	r := &Repository{
		items: make([]listing.Listing, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	copy(r.items, items)

	for i, l := range r.items {
		if err := validate.Struct(l); err != nil {
			return nil, fmt.Errorf("store: listing %d (%q) invalid: %w", i, l.ID, err)
		}
		if _, dup := r.byID[l.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, l.ID)
		}
		r.byID[l.ID] = i
	}
	return r, nil
}

// Parse decodes a YAML listings document.
func Parse(data []byte) (*Repository, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store: parse listings: %w", err)
	}
	return New(doc.Listings)
}

// Load reads listings from path. An empty path loads the embedded seed.
func Load(path string) (*Repository, error) {
	if path == "" {
		return Parse(seedYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded mock dataset.
func Default() *Repository {
	r, err := Parse(seedYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded seed is invalid: %v", err))
	}
	return r
}

// All returns the collection in its original order. The slice is a copy.
func (r *Repository) All() []listing.Listing {
	out := make([]listing.Listing, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of listings.
func (r *Repository) Len() int { return len(r.items) }

// Get looks up a listing by id. The boolean is false when the id is unknown.
func (r *Repository) Get(id string) (listing.Listing, bool) {
	i, ok := r.byID[id]
	if !ok {
		return listing.Listing{}, false
	}
	return r.items[i], true
}

// Find is Get in the error idiom; unknown ids wrap listing.ErrNotFound.
func (r *Repository) Find(id string) (listing.Listing, error) {
	l, ok := r.Get(id)
	if !ok {
		return listing.Listing{}, fmt.Errorf("%w: %s", listing.ErrNotFound, id)
	}
	return l, nil
}

// CountByCategory returns how many listings belong to each category.
func (r *Repository) CountByCategory() map[listing.Category]int {
	counts := make(map[listing.Category]int, len(listing.Categories()))
	for _, l := range r.items {
		counts[l.Category]++
	}
	return counts
}
