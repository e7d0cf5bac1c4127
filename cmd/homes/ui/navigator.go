package ui

import (
	"fmt"
	"strings"
)

// Route paths
const (
	RouteList          = "/"
	listingRoutePrefix = "/listing/"
)

// Route is a parsed navigation target.
type Route struct {
	Path      string
	ListingID string // set for detail routes
}

// IsDetail reports whether r points at a single listing.
func (r Route) IsDetail() bool { return r.ListingID != "" }

// ListingRoute returns the detail path for id.
func ListingRoute(id string) string {
	return listingRoutePrefix + id
}

// ParseRoute parses "/" or "/listing/{id}".
func ParseRoute(path string) (Route, error) {
	switch {
	case path == RouteList || path == "":
		return Route{Path: RouteList}, nil
	case strings.HasPrefix(path, listingRoutePrefix):
		id := strings.TrimPrefix(path, listingRoutePrefix)
		if id == "" || strings.Contains(id, "/") {
			return Route{}, fmt.Errorf("invalid listing route %q", path)
		}
		return Route{Path: path, ListingID: id}, nil
	}
	return Route{}, fmt.Errorf("unknown route %q", path)
}

// Navigator is a route stack rooted at the list page.
type Navigator struct {
	stack []Route
}

// NewNavigator returns a navigator showing the list.
func NewNavigator() *Navigator {
	return &Navigator{stack: []Route{{Path: RouteList}}}
}

// Current returns the route on top of the stack.
func (n *Navigator) Current() Route {
	return n.stack[len(n.stack)-1]
}

// Push navigates to path.
func (n *Navigator) Push(path string) (Route, error) {
	r, err := ParseRoute(path)
	if err != nil {
		return Route{}, err
	}
	n.stack = append(n.stack, r)
	return r, nil
}

// Back pops the current route. The list route is never popped; Back reports
// false when already there.
func (n *Navigator) Back() bool {
	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Depth returns the number of routes on the stack.
func (n *Navigator) Depth() int { return len(n.stack) }
