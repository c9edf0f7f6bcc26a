package cli

import (
	"sync"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/terminal"
)

// navigator moves the user between portal pages from the terminal
// The current page is remembered by the profile
type navigator struct {
	mu        sync.Mutex
	profile   *Profile
	ui        terminal.UI
	loginPage string
	current   auth.Route
	navigated bool
}

func newNavigator(profile *Profile, ui terminal.UI, start string) *navigator {
	if start == "" {
		start = profile.Route()
	}

	loginPage := profile.Pages().Login
	if loginPage == "" {
		loginPage = auth.DefaultLoginPage
	}

	return &navigator{
		profile:   profile,
		ui:        ui,
		loginPage: loginPage,
		current:   auth.NewRoute(start),
	}
}

func (n *navigator) NavigateTo(route auth.Route) {
	n.mu.Lock()
	n.current = route
	n.navigated = true
	n.profile.SetRoute(route.String())
	n.mu.Unlock()

	if route.Path == n.loginPage {
		n.ui.Print(terminal.NewWarningLog("Session ended, navigated to %s", route))
		return
	}
	n.ui.Print(terminal.NewDebugLog("Navigated to %s", route))
}

func (n *navigator) Current() auth.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigated reports whether the user moved to another page
func (n *navigator) Navigated() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.navigated
}
