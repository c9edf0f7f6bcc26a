package mock

import (
	"sync"

	"github.com/ldxinsight/ldx-cli/internal/auth"
)

// Navigator is a mocked navigator that records every navigation
type Navigator struct {
	mu      sync.Mutex
	current auth.Route
	history []auth.Route
}

// NewNavigator creates a mocked navigator starting at the provided page
func NewNavigator(start string) *Navigator {
	return &Navigator{current: auth.NewRoute(start)}
}

// NavigateTo records the navigation and moves to the route
func (n *Navigator) NavigateTo(route auth.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = route
	n.history = append(n.history, route)
}

// Current returns the current route
func (n *Navigator) Current() auth.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// History returns every recorded navigation, as route strings
func (n *Navigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]string, 0, len(n.history))
	for _, route := range n.history {
		out = append(out, route.String())
	}
	return out
}
