// Package route tracks the location the TUI is showing.
package route

import (
	"net/url"
	"strings"
)

// Home is the initial location.
const Home = "/"

const subsetPrefix = "/subsets/"

// Locator exposes the current location to components that only read it.
type Locator interface {
	Location() string
}

// Router keeps a history stack of locations.
type Router struct {
	history []string
}

// NewRouter creates a router positioned at Home.
func NewRouter() *Router {
	return &Router{history: []string{Home}}
}

// Location returns the current location.
func (r *Router) Location() string {
	if r == nil || len(r.history) == 0 {
		return Home
	}
	return r.history[len(r.history)-1]
}

// Push navigates to path. Pushing the current location is a no-op.
func (r *Router) Push(path string) {
	if path == "" || path == r.Location() {
		return
	}
	r.history = append(r.history, path)
}

// Back returns to the previous location. It reports false at Home.
func (r *Router) Back() bool {
	if len(r.history) <= 1 {
		return false
	}
	r.history = r.history[:len(r.history)-1]
	return true
}

// Reset clears the history back to Home.
func (r *Router) Reset() {
	r.history = []string{Home}
}

// Subset returns the location of the statistics of key.
func Subset(key string) string {
	return subsetPrefix + url.PathEscape(key)
}

// SubsetKey extracts the subset key from a location built by Subset.
func SubsetKey(location string) (string, bool) {
	rest, ok := strings.CutPrefix(location, subsetPrefix)
	if !ok {
		return "", false
	}
	key, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return key, true
}
