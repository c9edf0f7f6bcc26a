package register

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagUsername      = "username"
	flagUsernameShort = "u"
	flagUsernameUsage = "the username to register"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "the password to register"

	flagRedirect      = "redirect"
	flagRedirectUsage = "the portal page to land on once registered"
)

type inputs struct {
	Username string
	Password string
	Redirect string
}

func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.Username == "" {
		if err := ui.AskOne(&i.Username, &survey.Input{Message: "Username"}); err != nil {
			return err
		}
	}

	if i.Password == "" {
		if err := ui.AskOne(&i.Password, &survey.Password{Message: "Password"}); err != nil {
			return err
		}
	}
	return nil
}

// Command is the `register` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Username, flagUsername, flagUsernameShort, "", flagUsernameUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
	fs.StringVar(&cmd.inputs.Redirect, flagRedirect, "", flagRedirectUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
// Registered sessions carry no refresh token, so they end once the access token expires
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	session, err := clients.Hub.Register(context.Background(), hub.Credentials{
		Username: cmd.inputs.Username,
		Password: cmd.inputs.Password,
	})
	if err != nil {
		return cli.NewPrivileged("failed to register", err)
	}

	if err := clients.Session.LogIn(session, auth.LogInOptions{RedirectTo: cmd.inputs.Redirect}); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully registered %s", cmd.inputs.Username))
	return nil
}
