package whoami

import (
	"context"
	"time"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagDetails      = "details"
	flagDetailsUsage = "fetch the member details from the portal"

	headerIssuedAt    = "Issued At"
	headerExpiresAt   = "Expires At"
	headerStatus      = "Status"
	headerRefreshable = "Refreshable"

	statusActive  = "active"
	statusExpired = "expired"
)

var tableHeaders = []string{headerIssuedAt, headerExpiresAt, headerStatus, headerRefreshable}

// Command is the `whoami` command
type Command struct {
	details bool
	now     func() time.Time
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.BoolVar(&cmd.details, flagDetails, false, flagDetailsUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	session := clients.Session.Session()
	if !session.LoggedIn() {
		ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}

	claims, err := session.AccessTokenClaims()
	if err != nil {
		return err
	}

	now := time.Now
	if cmd.now != nil {
		now = cmd.now
	}

	status := statusActive
	if claims.Expired(now()) {
		status = statusExpired
	}

	ui.Print(
		terminal.NewTextLog("Currently logged in user: %s", claims.Subject),
		terminal.NewTableLog("Session", tableHeaders, map[string]interface{}{
			headerIssuedAt:    formatTime(claims.IssuedAt),
			headerExpiresAt:   formatTime(claims.ExpiresAt),
			headerStatus:      status,
			headerRefreshable: session.RefreshToken != "",
		}),
	)

	if !cmd.details {
		return nil
	}

	var member hub.User
	if err := clients.Deps.Load(context.Background(), "member", func(ctx context.Context) error {
		m, err := clients.Hub.User(ctx, "")
		if err != nil {
			return err
		}
		member = m
		return nil
	}); err != nil {
		return err
	}

	ui.Print(terminal.NewTitledJSONLog("Member details", member))
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "n/a"
	}
	return t.UTC().Format(time.RFC3339)
}
