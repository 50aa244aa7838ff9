// Package router picks the screen to show from the session state and the
// currently selected page.
package router

import (
	"strings"

	"github.com/misterclayt0n/keima/internal/session"
)

type Page string

const (
	PageOnboarding Page = "onboarding"
	PageHome       Page = "home"
	PageWeight     Page = "weight"
	PageWorkout    Page = "workout"
	PageDiet       Page = "diet"
	PageProgress   Page = "progress"
	PageCatalog    Page = "catalog"

	// Gate pages, never selectable.
	PageLoading Page = "loading"
	PageAuth    Page = "auth"
)

// DefaultPage is shown for an unrecognized selector.
const DefaultPage = PageCatalog

// Pages lists the selectable screens in navigation order.
var Pages = []Page{PageHome, PageWorkout, PageCatalog, PageWeight, PageDiet, PageProgress, PageOnboarding}

func Known(p Page) bool {
	for _, k := range Pages {
		if k == p {
			return true
		}
	}
	return false
}

// Parse normalizes user input into a Page. Unknown names are kept as is and
// resolve to DefaultPage.
func Parse(s string) Page {
	return Page(strings.ToLower(strings.TrimSpace(s)))
}

// Resolve applies the authentication gate to the selected page.
func Resolve(state session.State, selected Page) Page {
	switch state {
	case session.StateRestoring:
		return PageLoading
	case session.StateAuthenticated:
		if Known(selected) {
			return selected
		}
		return DefaultPage
	default:
		return PageAuth
	}
}

// Router holds the current page selector.
type Router struct {
	current Page
}

// New starts on the catalog.
func New() *Router {
	return &Router{current: DefaultPage}
}

func (r *Router) Navigate(p Page) {
	r.current = p
}

func (r *Router) Current() Page {
	return r.current
}

// Screen is the page to render for the given session state.
func (r *Router) Screen(state session.State) Page {
	return Resolve(state, r.current)
}

// ShowNav reports whether the bottom navigation is shown.
func (r *Router) ShowNav(state session.State) bool {
	p := r.Screen(state)
	return p != PageOnboarding && p != PageAuth && p != PageLoading
}
