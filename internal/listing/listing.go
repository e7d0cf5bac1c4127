// Package listing defines the rental listing record and its category enumeration.
package listing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a listing id is not present in the repository.
var ErrNotFound = errors.New("listing: not found")

// Category is the mutually exclusive classification that drives the primary filter.
type Category string

const (
	CategoryVerified Category = "verified"
	CategoryNearYou  Category = "near_you"
	CategoryNew      Category = "new"
)

// Categories returns every category in tab order.
func Categories() []Category {
	return []Category{CategoryVerified, CategoryNearYou, CategoryNew}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryVerified, CategoryNearYou, CategoryNew:
		return true
	}
	return false
}

// Label returns the human-facing tab label.
func (c Category) Label() string {
	switch c {
	case CategoryVerified:
		return "Verified"
	case CategoryNearYou:
		return "Near you"
	case CategoryNew:
		return "New"
	}
	return string(c)
}

func (c Category) String() string { return string(c) }

// ParseCategory accepts either the wire value ("near_you") or the label
// ("Near you"), case-insensitively.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if norm == string(c) || norm == strings.ToLower(c.Label()) {
			return c, nil
		}
	}
	// "near-you" and "nearyou" show up in shell usage
	switch strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm) {
	case "nearyou":
		return CategoryNearYou, nil
	}
	return "", fmt.Errorf("unknown category %q (valid: verified, near_you, new)", s)
}

// Listing is a single rental property record. Values are treated as immutable
// once loaded into a repository.
type Listing struct {
	ID            string   `yaml:"id" json:"id" validate:"required"`
	Title         string   `yaml:"title" json:"title" validate:"required"`
	Address       string   `yaml:"address" json:"address" validate:"required"`
	City          string   `yaml:"city" json:"city" validate:"required"`
	Price         float64  `yaml:"price" json:"price" validate:"gte=0"`
	Currency      string   `yaml:"currency" json:"currency" validate:"required,len=3,uppercase"`
	Category      Category `yaml:"category" json:"category" validate:"required,oneof=verified near_you new"`
	IsVerified    bool     `yaml:"is_verified" json:"isVerified"`
	ImageURL      string   `yaml:"image_url" json:"imageUrl" validate:"omitempty,url"`
	Bedrooms      int      `yaml:"bedrooms" json:"bedrooms" validate:"gte=0"`
	Bathrooms     int      `yaml:"bathrooms" json:"bathrooms" validate:"gte=0"`
	Size          int      `yaml:"size" json:"size" validate:"gte=0"` // m²
	Description   string   `yaml:"description" json:"description"`
	LandlordName  string   `yaml:"landlord_name" json:"landlordName"`
	AvailableFrom string   `yaml:"available_from" json:"availableFrom" validate:"omitempty,datetime=2006-01-02"`

	// Message metadata is carried for future features and is not used by filtering.
	UnreadMessages int    `yaml:"unread_messages,omitempty" json:"unreadMessages" validate:"gte=0"`
	LastMessageAt  string `yaml:"last_message_at,omitempty" json:"lastMessageAt,omitempty"`
}
