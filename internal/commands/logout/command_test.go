package logout

import (
	"testing"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/assert"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/mock"
)

func TestLogoutHandler(t *testing.T) {
	t.Run("Should clear the session and land on the login page", func(t *testing.T) {
		clients, navigator := mock.NewClients(t, mock.HubClient{}, "/data", auth.Session{AccessToken: "access", RefreshToken: "refresh"})
		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))

		assert.Equal(t, auth.Session{}, clients.Session.Session())
		assert.Equal(t, []string{"/login"}, navigator.History())
		assert.Equal(t, "01:23:45 UTC INFO  Successfully logged out\n", out.String())
	})

	t.Run("Should attach the redirect to the login page", func(t *testing.T) {
		clients, navigator := mock.NewClients(t, mock.HubClient{}, "/data", auth.Session{AccessToken: "access"})
		_, ui := mock.NewUI()

		cmd := &Command{redirect: "/data"}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))

		assert.Equal(t, []string{"/login?redirect=%2Fdata"}, navigator.History())
	})

	t.Run("Should do nothing without a session", func(t *testing.T) {
		clients, navigator := mock.NewClients(t, mock.HubClient{}, "/data", auth.Session{})
		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))

		assert.Equal(t, 0, len(navigator.History()))
		assert.Equal(t, "01:23:45 UTC INFO  No user is currently logged in\n", out.String())
	})
}
