package mock

import (
	"testing"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/cookie"
)

// NewClients returns the CLI clients built around the provided hub client
// along with the navigator of its in-memory session, starting on the provided page
func NewClients(t *testing.T, hubClient hub.Client, start string, session auth.Session) (cli.Clients, *Navigator) {
	t.Helper()

	jar, err := cookie.New(&cookie.MemoryStrategy{})
	if err != nil {
		t.Fatalf("failed to create cookie jar: %s", err)
	}
	if session.AccessToken != "" {
		if err := jar.Set(auth.DefaultAccessTokenCookie, session.AccessToken); err != nil {
			t.Fatalf("failed to set session cookie: %s", err)
		}
	}
	if session.RefreshToken != "" {
		if err := jar.Set(auth.DefaultRefreshTokenCookie, session.RefreshToken); err != nil {
			t.Fatalf("failed to set session cookie: %s", err)
		}
	}

	navigator := NewNavigator(start)

	return cli.Clients{
		Hub:     hubClient,
		Session: auth.NewStore(jar, navigator, auth.Config{}),
		Deps:    hub.NewDependencies(),
	}, navigator
}
