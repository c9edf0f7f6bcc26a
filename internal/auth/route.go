package auth

import (
	"net/url"
)

// QueryRedirect is the route query parameter holding the post-login target
const QueryRedirect = "redirect"

// Route is a portal page location
type Route struct {
	Path  string
	Query url.Values
}

// NewRoute parses a route from its string form (e.g. "/login?redirect=/data")
func NewRoute(s string) Route {
	u, err := url.Parse(s)
	if err != nil {
		return Route{Path: s}
	}
	r := Route{Path: u.Path}
	if q := u.Query(); len(q) > 0 {
		r.Query = q
	}
	return r
}

// Redirect returns the route's post-login target, if any
func (r Route) Redirect() string {
	return r.Query.Get(QueryRedirect)
}

func (r Route) String() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}

// Navigator moves the user between portal pages
type Navigator interface {
	NavigateTo(route Route)
	Current() Route
}
