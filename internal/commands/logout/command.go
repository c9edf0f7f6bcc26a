package logout

import (
	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagRedirect      = "redirect"
	flagRedirectUsage = "the portal page to land on when logging back in"
)

// Command is the `logout` command
type Command struct {
	redirect string
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.redirect, flagRedirect, "", flagRedirectUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	if !clients.Session.LoggedIn() {
		ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}

	if err := clients.Session.LogOut(auth.LogOutOptions{Redirect: cmd.redirect}); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully logged out"))
	return nil
}
