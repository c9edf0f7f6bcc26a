package login

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `login` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
	fs.StringVar(&cmd.inputs.Redirect, flagRedirect, "", flagRedirectUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	if clients.Session.LoggedIn() {
		proceed, err := ui.Confirm("This action will terminate the existing session, would you like to proceed?", true)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	// the login page carries the page the user was sent away from
	redirect := cmd.inputs.Redirect
	if redirect == "" {
		redirect = clients.Session.Route().Redirect()
	}

	session, err := clients.Hub.Login(context.Background(), hub.Credentials{
		Email:    cmd.inputs.Email,
		Password: cmd.inputs.Password,
	})
	if err != nil {
		return cli.NewPrivileged("failed to log in", err)
	}

	if err := clients.Session.LogIn(session, auth.LogInOptions{RedirectTo: redirect}); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully logged in"))
	return nil
}
